package handler

import (
	"fmt"

	tele "gopkg.in/telebot.v3"
)

// fakeContext records what handlers send. Methods the handlers do not
// call fall through to the nil embedded Context and panic.
type fakeContext struct {
	tele.Context

	sender   *tele.User
	text     string
	data     string
	args     []string
	callback *tele.Callback
	editErr  error

	sent      []string
	markups   []*tele.ReplyMarkup
	edits     []string
	responses []*tele.CallbackResponse
}

func newMessageContext(userID int64, text string) *fakeContext {
	return &fakeContext{sender: &tele.User{ID: userID}, text: text}
}

func newCallbackContext(userID int64, data string) *fakeContext {
	return &fakeContext{
		sender:   &tele.User{ID: userID},
		data:     data,
		callback: &tele.Callback{ID: "cb-1", Data: data},
	}
}

func (c *fakeContext) Sender() *tele.User       { return c.sender }
func (c *fakeContext) Text() string             { return c.text }
func (c *fakeContext) Data() string             { return c.data }
func (c *fakeContext) Args() []string           { return c.args }
func (c *fakeContext) Callback() *tele.Callback { return c.callback }

func (c *fakeContext) Send(what interface{}, opts ...interface{}) error {
	c.sent = append(c.sent, fmt.Sprint(what))
	c.markups = append(c.markups, markupOf(opts))
	return nil
}

func (c *fakeContext) Edit(what interface{}, opts ...interface{}) error {
	if c.editErr != nil {
		return c.editErr
	}
	c.edits = append(c.edits, fmt.Sprint(what))
	c.markups = append(c.markups, markupOf(opts))
	return nil
}

func (c *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		c.responses = append(c.responses, nil)
		return nil
	}
	c.responses = append(c.responses, resp[0])
	return nil
}

func (c *fakeContext) lastSent() string {
	if len(c.sent) == 0 {
		return ""
	}
	return c.sent[len(c.sent)-1]
}

func (c *fakeContext) lastMarkup() *tele.ReplyMarkup {
	if len(c.markups) == 0 {
		return nil
	}
	return c.markups[len(c.markups)-1]
}

func markupOf(opts []interface{}) *tele.ReplyMarkup {
	for _, opt := range opts {
		if m, ok := opt.(*tele.ReplyMarkup); ok {
			return m
		}
	}
	return nil
}

// buttonUniques flattens the inline keyboard into endpoint|data pairs
func buttonUniques(m *tele.ReplyMarkup) []string {
	if m == nil {
		return nil
	}
	var out []string
	for _, row := range m.InlineKeyboard {
		for _, btn := range row {
			if btn.Data != "" {
				out = append(out, btn.Unique+"|"+btn.Data)
				continue
			}
			out = append(out, btn.Unique)
		}
	}
	return out
}
