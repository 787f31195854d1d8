package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/aroundtheus/around-api/internal/api/shared"
	"github.com/aroundtheus/around-api/internal/domain"
	"github.com/aroundtheus/around-api/internal/platform/logger"
	"github.com/aroundtheus/around-api/internal/store"
)

// CardHandler handles the authenticated /cards endpoints.
type CardHandler struct {
	cardStore store.CardStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewCardHandler creates a new CardHandler with the given dependencies.
func NewCardHandler(cardStore store.CardStore, logger *slog.Logger) *CardHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CardHandler")
	}

	return &CardHandler{
		cardStore: cardStore,
		validator: newValidator(),
		logger:    logger.With(slog.String("component", "card_handler")),
	}
}

// ListCards handles GET /cards. An empty collection is a successful 200
// response with an empty list.
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cardStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardsToResponse(cards))
}

// CreateCard handles POST /cards. The owner is always the authenticated
// identity; client-supplied owner data is not accepted.
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var req CreateCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgInvalidData)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, ValidationMessages(err))
		return
	}

	card, err := domain.NewCard(userID, req.Name, req.Link)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.cardStore.Create(r.Context(), card); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("card created",
		slog.String("card_id", card.ID.String()),
		slog.String("owner_id", userID.String()))
	shared.RespondWithData(w, r, http.StatusCreated, cardToResponse(card))
}

// DeleteCard handles DELETE /cards/{cardId}. The card is fetched first so
// ownership can be checked: only the owner may delete, anyone else gets 403.
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	cardID, err := getPathUUID(r, "cardId", "Invalid Card ID passed for deleting a card")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	card, err := h.cardStore.GetByID(r.Context(), cardID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if !card.IsOwnedBy(userID) {
		log.Warn("delete attempt on card owned by another user",
			slog.String("card_id", cardID.String()),
			slog.String("owner_id", card.OwnerID.String()),
			slog.String("requester_id", userID.String()))
		HandleAPIError(w, r, domain.ErrForbidden, "")
		return
	}

	// Delete can still report not-found if the card went away after the
	// ownership check; that maps to 404 like any other missing card.
	if err := h.cardStore.Delete(r.Context(), cardID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("card deleted", slog.String("card_id", cardID.String()))
	shared.RespondWithData(w, r, http.StatusOK, cardToResponse(card))
}

// LikeCard handles PUT /cards/{cardId}/likes. Re-liking is a no-op.
func (h *CardHandler) LikeCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	cardID, err := getPathUUID(r, "cardId", "Invalid Card ID passed for liking a card")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	card, err := h.cardStore.AddLike(r.Context(), cardID, userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, cardToResponse(card))
}

// UnlikeCard handles DELETE /cards/{cardId}/likes. Unliking a card that was
// never liked is a no-op, not an error.
func (h *CardHandler) UnlikeCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	cardID, err := getPathUUID(r, "cardId", "Invalid Card ID passed for disliking a card")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	card, err := h.cardStore.RemoveLike(r.Context(), cardID, userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, cardToResponse(card))
}
