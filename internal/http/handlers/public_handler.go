// Public utility handlers: API root, health probes, and the scripted FAQ.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jrautos/go-dealer-backend/internal/chatbot"
	"github.com/jrautos/go-dealer-backend/internal/i18n"
)

// FAQProvider exposes the scripted FAQ menu. The production implementation
// is chatbot.Bot; tests substitute their own.
type FAQProvider interface {
	Greeting(lang string) string
	Options(lang string) []chatbot.Option
	Answer(lang, id string) (string, bool)
}

// FAQMenuResponse is the FAQ menu with its localized greeting.
type FAQMenuResponse struct {
	Greeting string           `json:"greeting"`
	Options  []chatbot.Option `json:"options"`
}

// FAQAnswerResponse is the canned answer for one FAQ option.
type FAQAnswerResponse struct {
	ID     string `json:"id"`
	Answer string `json:"answer"`
}

// lang resolves the response language from the `lang` query parameter or the
// Accept-Language header, falling back to the configured default.
func (h *Handlers) lang(c *gin.Context) string {
	if q := c.Query("lang"); q == i18n.LangES || q == i18n.LangEN {
		return q
	}
	return i18n.Match(c.GetHeader("Accept-Language"), h.defaultLang)
}

// Root godoc
// @ID          apiRoot
// @Summary     API root
// @Tags        Meta
// @Produce     json
// @Success     200  {object}  map[string]string
// @Router      / [get]
func (h *Handlers) Root(c *gin.Context) {
	ok(c, http.StatusOK, gin.H{"message": "Hello World"})
}

// Health godoc
// @ID          health
// @Summary     Liveness probe
// @Tags        Meta
// @Produce     json
// @Success     200  {object}  map[string]string
// @Router      /health [get]
func (h *Handlers) Health(c *gin.Context) {
	ok(c, http.StatusOK, gin.H{"status": "ok"})
}

// FAQMenu godoc
// @ID          faqMenu
// @Summary     FAQ menu
// @Description Returns the scripted FAQ options with a localized greeting. Language comes from ?lang= or Accept-Language; Spanish is the default.
// @Tags        FAQ
// @Produce     json
// @Param       lang             query   string  false  "Language (es|en)"
// @Param       Accept-Language  header  string  false  "Preferred language"
// @Success     200  {object}  handlers.FAQMenuResponse
// @Router      /faq [get]
func (h *Handlers) FAQMenu(c *gin.Context) {
	lang := h.lang(c)
	ok(c, http.StatusOK, FAQMenuResponse{
		Greeting: h.faq.Greeting(lang),
		Options:  h.faq.Options(lang),
	})
}

// FAQAnswer godoc
// @ID          faqAnswer
// @Summary     FAQ answer
// @Description Returns the canned answer for a FAQ option id.
// @Tags        FAQ
// @Produce     json
// @Param       id    path    string  true   "Option id"
// @Param       lang  query   string  false  "Language (es|en)"
// @Success     200  {object}  handlers.FAQAnswerResponse
// @Failure     404  {object}  handlers.ErrorResponse "Unknown option"
// @Router      /faq/{id} [get]
func (h *Handlers) FAQAnswer(c *gin.Context) {
	id := c.Param("id")
	lang := h.lang(c)
	answer, found := h.faq.Answer(lang, id)
	if !found {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "unknown FAQ option")
		return
	}
	ok(c, http.StatusOK, FAQAnswerResponse{ID: id, Answer: answer})
}
