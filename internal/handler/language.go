package handler

import (
	"errors"
	"fmt"

	"lexicon/internal/domain"
	"lexicon/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleLanguage handles /lang [code] and the language button.
// Without a code it shows the current language and waits for one.
func (h *Handler) handleLanguage(c tele.Context) error {
	userID := c.Sender().ID

	if args := c.Args(); c.Callback() == nil && len(args) > 0 {
		return h.applyLanguage(c, userID, args[0])
	}

	current, err := h.lookupService.Language(userID)
	if err != nil {
		h.logger.Error("Failed to get language", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	h.SetState(userID, &domain.StateData{State: domain.StateWaitingLanguage})

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))

	text := fmt.Sprintf("🌐 Сейчас язык словаря: %s\n\nОтправь код языка, например en, es, de или pt-BR", current)
	return h.editOrSend(c, text, markup)
}

// applyLanguage stores the language code sent by the user
func (h *Handler) applyLanguage(c tele.Context, userID int64, code string) error {
	language, err := h.lookupService.SetLanguage(userID, code)
	if errors.Is(err, service.ErrInvalidLanguage) {
		return c.Send("Не понимаю код языка. Примеры: en, es, de, pt-BR")
	}
	if err != nil {
		h.logger.Error("Failed to set language", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Не удалось сохранить язык. Попробуйте ещё раз.")
	}

	h.logger.Info("Language changed",
		zap.Int64("user_id", userID),
		zap.String("language", language),
	)

	h.ResetState(userID)
	return c.Send(fmt.Sprintf("✅ Язык словаря: %s\n\n%s", language, mainMenuText), mainMenuMarkup())
}
