package handler

import (
	"fmt"
	"strconv"
	"time"

	"lexicon/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Words offered as buttons under a day's lookups
const maxDayWordButtons = 10

// handleViewDays shows the first page of days with lookups
func (h *Handler) handleViewDays(c tele.Context) error {
	return h.showDays(c, 1)
}

// handlePagination handles page navigation
func (h *Handler) handlePagination(c tele.Context) error {
	page, err := strconv.Atoi(cleanCallbackData(c.Data()))
	if err != nil || page < 1 {
		return c.Respond(&tele.CallbackResponse{Text: "Неверная страница"})
	}
	return h.showDays(c, page)
}

func (h *Handler) showDays(c tele.Context, page int) error {
	userID := c.Sender().ID

	days, totalPages, err := h.historyService.GetDaysList(userID, page)
	if err != nil {
		h.logger.Error("Failed to get days list", zap.Error(err), zap.Int64("user_id", userID))
		return h.notify(c, "Ошибка при загрузке данных", false)
	}

	if len(days) == 0 {
		if page > 1 {
			return h.notify(c, "Нет данных", false)
		}
		return h.notify(c, "Ты пока ничего не искал", true)
	}

	markup := daysMarkup(days, page, totalPages, h.historyService.Location())
	return h.editOrSend(c, "📅 Вот твои дни:", markup)
}

// daysMarkup lists days as buttons with page navigation, labelled relative to today in loc
func daysMarkup(days []domain.Day, page, totalPages int, loc *time.Location) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(days)+2)

	for _, day := range days {
		btnText := fmt.Sprintf("%s (%d)", day.DisplayString(loc), day.LookupCount)
		rows = append(rows, markup.Row(markup.Data(btnText, btnDay.Unique, day.DateString())))
	}

	if totalPages > 1 {
		navRow := tele.Row{}
		if page > 1 {
			navRow = append(navRow, markup.Data("⬅️", btnPage.Unique, strconv.Itoa(page-1)))
		}
		if page < totalPages {
			navRow = append(navRow, markup.Data("➡️", btnPage.Unique, strconv.Itoa(page+1)))
		}
		if len(navRow) > 0 {
			rows = append(rows, navRow)
		}
	}

	rows = append(rows, markup.Row(btnBack))
	markup.Inline(rows...)
	return markup
}

// handleDaySelection shows lookups of the selected day
func (h *Handler) handleDaySelection(c tele.Context) error {
	userID := c.Sender().ID
	dateStr := cleanCallbackData(c.Data())

	h.logger.Debug("Handling day selection", zap.String("date", dateStr), zap.Int64("user_id", userID))

	lookups, err := h.historyService.GetLookupsByDate(userID, dateStr)
	if err != nil {
		h.logger.Error("Failed to get lookups by date", zap.Error(err), zap.Int64("user_id", userID))
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при загрузке"})
	}

	if len(lookups) == 0 {
		return c.Respond(&tele.CallbackResponse{Text: "Нет слов за этот день"})
	}

	return h.editOrSend(c, formatLookups(lookups), lookupsMarkup(lookups))
}

// lookupsMarkup offers found words for another lookup, two per row
func lookupsMarkup(lookups []domain.Lookup) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	seen := make(map[string]bool)
	row := tele.Row{}
	for _, l := range lookups {
		if !l.Found || seen[l.Word] || len(l.Word) > maxButtonWord {
			continue
		}
		if len(seen) == maxDayWordButtons {
			break
		}
		seen[l.Word] = true

		row = append(row, markup.Data(l.Word, btnDefine.Unique, l.Word))
		if len(row) == 2 {
			rows = append(rows, row)
			row = tele.Row{}
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, markup.Row(btnBackToDays, btnMainMenu))
	markup.Inline(rows...)
	return markup
}
