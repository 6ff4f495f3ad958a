package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lexicon/internal/domain"
	"lexicon/internal/service"
	"lexicon/pkg/dictionary"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	// Ensure user exists
	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	// Check authorization first
	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	// If not authorized, check password
	if !authorized {
		if !h.authService.CheckPassword(text) {
			return c.Send("Неверный пароль")
		}

		if err := h.authService.AuthorizeUser(userID); err != nil {
			h.logger.Error("Failed to authorize user", zap.Error(err))
			return c.Send("Произошла ошибка. Попробуйте позже.")
		}

		h.logger.Info("User authorized", zap.Int64("user_id", userID))
		h.ResetState(userID)
		return c.Send("✅ Доступ разрешён!\n\n"+mainMenuText, mainMenuMarkup())
	}

	// User is authorized, handle based on state
	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingLanguage:
		return h.applyLanguage(c, userID, text)
	default:
		return h.lookupWord(c, userID, text)
	}
}

// lookupWord sends definitions of word with follow-up buttons
func (h *Handler) lookupWord(c tele.Context, userID int64, word string) error {
	word = service.NormalizeWord(word)

	items, err := h.lookupService.Define(context.Background(), userID, word)
	switch {
	case errors.Is(err, service.ErrEmptyWord):
		return c.Send("Отправь слово, которое нужно найти")
	case dictionary.IsNotFound(err):
		h.logger.Info("Word not found", zap.Int64("user_id", userID), zap.String("word", word))
		return c.Send(fmt.Sprintf("🤷 Не нашёл «%s» в словаре", word), mainMenuMarkup())
	case err != nil:
		h.logger.Error("Failed to look up word",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("word", word),
		)
		return c.Send("Словарь сейчас недоступен. Попробуйте позже.")
	}

	h.SetState(userID, &domain.StateData{State: domain.StateIdle, LastWord: word})

	h.logger.Info("Word looked up",
		zap.Int64("user_id", userID),
		zap.String("word", word),
		zap.Int("parts_of_speech", len(items)),
	)

	return c.Send(formatDefinitions(word, items), wordMarkup(word))
}

// handleDefine looks up a word picked from history
func (h *Handler) handleDefine(c tele.Context) error {
	userID := c.Sender().ID
	word := cleanCallbackData(c.Data())

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return h.lookupWord(c, userID, word)
}

// handleSynonyms shows synonyms of the word in callback data
func (h *Handler) handleSynonyms(c tele.Context) error {
	userID := c.Sender().ID
	word := cleanCallbackData(c.Data())

	groups, err := h.lookupService.Synonyms(context.Background(), userID, word)
	if err != nil {
		return h.respondLookupError(c, userID, word, err)
	}
	return h.sendFollowUp(c, formatSynonyms(word, groups), word)
}

// handleAntonyms shows antonyms of the word in callback data
func (h *Handler) handleAntonyms(c tele.Context) error {
	userID := c.Sender().ID
	word := cleanCallbackData(c.Data())

	groups, err := h.lookupService.Antonyms(context.Background(), userID, word)
	if err != nil {
		return h.respondLookupError(c, userID, word, err)
	}
	return h.sendFollowUp(c, formatAntonyms(word, groups), word)
}

// handlePhonetics shows pronunciations of the word in callback data
func (h *Handler) handlePhonetics(c tele.Context) error {
	userID := c.Sender().ID
	word := cleanCallbackData(c.Data())

	entries, err := h.lookupService.Phonetics(context.Background(), userID, word)
	if err != nil {
		return h.respondLookupError(c, userID, word, err)
	}
	return h.sendFollowUp(c, formatPhonetics(word, entries), word)
}

// sendFollowUp keeps the definitions message and answers below it
func (h *Handler) sendFollowUp(c tele.Context, text, word string) error {
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return c.Send(text, wordMarkup(word))
}

func (h *Handler) respondLookupError(c tele.Context, userID int64, word string, err error) error {
	if dictionary.IsNotFound(err) || errors.Is(err, service.ErrEmptyWord) {
		return c.Respond(&tele.CallbackResponse{
			Text:      fmt.Sprintf("Не нашёл «%s» в словаре", word),
			ShowAlert: true,
		})
	}

	h.logger.Error("Failed follow-up lookup",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("word", word),
	)
	return c.Respond(&tele.CallbackResponse{Text: "Словарь сейчас недоступен"})
}
