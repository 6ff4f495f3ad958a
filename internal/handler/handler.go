package handler

import (
	"sync"

	"lexicon/internal/domain"
	"lexicon/internal/middleware"
	"lexicon/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot            *tele.Bot
	authService    *service.AuthService
	lookupService  *service.LookupService
	historyService *service.HistoryService
	logger         *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	lookupService *service.LookupService,
	historyService *service.HistoryService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:            bot,
		authService:    authService,
		lookupService:  lookupService,
		historyService: historyService,
		logger:         logger,
		states:         make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	auth := middleware.AuthMiddleware(h.authService, h.logger)

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/lang", h.handleLanguage, auth)
	h.bot.Handle("/history", h.handleViewDays, auth)

	// Text messages: password or a word to look up
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnViewDays, h.handleViewDays, auth)
	h.bot.Handle(&btnBackToDays, h.handleViewDays, auth)
	h.bot.Handle(&btnPage, h.handlePagination, auth)
	h.bot.Handle(&btnDay, h.handleDaySelection, auth)
	h.bot.Handle(&btnLanguage, h.handleLanguage, auth)
	h.bot.Handle(&btnDefine, h.handleDefine, auth)
	h.bot.Handle(&btnSynonyms, h.handleSynonyms, auth)
	h.bot.Handle(&btnAntonyms, h.handleAntonyms, auth)
	h.bot.Handle(&btnPhonetics, h.handlePhonetics, auth)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(&btnBack, h.handleStart)
	h.bot.Handle(&btnMainMenu, h.handleStart)

	// Fallback for callbacks no endpoint matched
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// Inline keyboard buttons
var (
	btnViewDays = tele.Btn{
		Unique: "view_days",
		Text:   "📅 История",
	}
	btnLanguage = tele.Btn{
		Unique: "language",
		Text:   "🌐 Язык словаря",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Отменить",
	}
	btnBack = tele.Btn{
		Unique: "back",
		Text:   "🏠 Назад",
	}
	btnBackToDays = tele.Btn{
		Unique: "back_to_days",
		Text:   "◀️ К дням",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Главное меню",
	}
)

// Endpoints of buttons that carry data (a word, a date or a page)
var (
	btnDefine    = tele.Btn{Unique: "def"}
	btnSynonyms  = tele.Btn{Unique: "syn"}
	btnAntonyms  = tele.Btn{Unique: "ant"}
	btnPhonetics = tele.Btn{Unique: "pho"}
	btnDay       = tele.Btn{Unique: "day"}
	btnPage      = tele.Btn{Unique: "page"}
)

const mainMenuText = "🏠 Главное меню\n\nОтправь слово, чтобы найти его значение, или выбери действие:"

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnViewDays),
		menu.Row(btnLanguage),
	)
	return menu
}

// Callback data is limited to 64 bytes, including the endpoint prefix
const maxButtonWord = 48

// wordMarkup offers follow-up lookups for word
func wordMarkup(word string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	if len(word) > maxButtonWord {
		markup.Inline(markup.Row(btnMainMenu))
		return markup
	}

	markup.Inline(
		markup.Row(
			markup.Data("🔁 Синонимы", btnSynonyms.Unique, word),
			markup.Data("↔️ Антонимы", btnAntonyms.Unique, word),
		),
		markup.Row(markup.Data("🔊 Произношение", btnPhonetics.Unique, word)),
		markup.Row(btnMainMenu),
	)
	return markup
}
