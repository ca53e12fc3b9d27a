// file: internals/features/quiz/lifecycle/controller/test_flow_controller.go
package controller

import (
	"bytes"
	"encoding/csv"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizku_backend/internals/configs"
	answerDTO "quizku_backend/internals/features/quiz/answers/dto"
	answerService "quizku_backend/internals/features/quiz/answers/service"
	catalogService "quizku_backend/internals/features/quiz/catalog/service"
	flowDTO "quizku_backend/internals/features/quiz/lifecycle/dto"
	scoring "quizku_backend/internals/features/quiz/scoring/service"
	sessionService "quizku_backend/internals/features/quiz/sessions/service"
	helper "quizku_backend/internals/helpers"
	sessionMW "quizku_backend/internals/middlewares/session"
)

/* ============================================================
   Controller
============================================================ */

type TestFlowController struct {
	Sessions *sessionService.TestSessionService
	Answers  *answerService.TestAnswerService
	Catalog  *catalogService.CatalogLoader
	Cfg      configs.QuizConfig
	V        *validator.Validate
}

func NewTestFlowController(db *gorm.DB, cfg configs.QuizConfig) *TestFlowController {
	return &TestFlowController{
		Sessions: sessionService.NewTestSessionService(db, cfg.Duration),
		Answers:  answerService.NewTestAnswerService(db),
		Catalog: catalogService.NewCatalogLoader(catalogService.Layout{
			Root:        cfg.QuestionsRoot,
			Subjects:    cfg.Subjects,
			MCQSets:     cfg.MCQSets,
			IntegerSets: cfg.IntegerSets,
		}),
		Cfg: cfg,
		V:   validator.New(),
	}
}

/* ============================================================
   Tiny helpers
============================================================ */

func (ctl *TestFlowController) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     ctl.Cfg.CookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   ctl.Cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (ctl *TestFlowController) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     ctl.Cfg.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   ctl.Cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func serverError(c *fiber.Ctx, where string, err error) error {
	log.Printf("[TEST] %s failed: %v", where, err)
	return helper.JsonError(c, http.StatusInternalServerError, helper.GenericFailureMessage)
}

/* ============================================================
   Pages
============================================================ */

// GET /start
func (ctl *TestFlowController) Start(c *fiber.Ctx) error {
	return c.Render("start", fiber.Map{
		"Title":           "Start Test",
		"DurationMinutes": int(ctl.Cfg.Duration.Minutes()),
	})
}

// GET /thankyou
func (ctl *TestFlowController) ThankYou(c *fiber.Ctx) error {
	return c.Render("thankyou", fiber.Map{
		"Title": "Thank You",
	})
}

/* ============================================================
   Lifecycle
============================================================ */

// GET /begin-test
func (ctl *TestFlowController) BeginTest(c *fiber.Ctx) error {
	m, _, err := ctl.Sessions.Begin(c.UserContext(), c.Cookies(ctl.Cfg.CookieName))
	if err != nil {
		return serverError(c, "begin", err)
	}
	ctl.setSessionCookie(c, m.TestSessionToken)
	return c.Redirect("/test", fiber.StatusFound)
}

// GET /test
func (ctl *TestFlowController) Test(c *fiber.Ctx) error {
	m := sessionMW.Current(c)

	questions, err := ctl.Catalog.Load(c.UserContext())
	if err != nil {
		return serverError(c, "load catalog", err)
	}
	saved, err := ctl.Answers.ListBySession(c.UserContext(), m.TestSessionToken)
	if err != nil {
		return serverError(c, "load answers", err)
	}

	resp := flowDTO.NewTestViewResponse(questions, saved, m, ctl.Sessions.Remaining(m), ctl.Cfg.Duration)
	return helper.JsonOK(c, "ok", resp)
}

// POST /submit-answer
func (ctl *TestFlowController) SubmitAnswer(c *fiber.Ctx) error {
	m := sessionMW.Current(c)

	var req answerDTO.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid body")
	}
	req.Normalize()
	if err := ctl.V.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if ctl.Sessions.IsFinished(m) {
		return helper.JsonError(c, http.StatusConflict, "test already finished")
	}

	if err := ctl.Answers.Upsert(c.UserContext(), m.TestSessionToken, req.QuestionID, req.Answer); err != nil {
		return serverError(c, "save answer", err)
	}
	return helper.JsonOK(c, "saved", answerDTO.SubmitAnswerResponse{
		QuestionID: req.QuestionID,
		Answer:     req.Answer,
		Cleared:    req.Answer == "",
	})
}

// POST /submit
func (ctl *TestFlowController) Submit(c *fiber.Ctx) error {
	m := sessionMW.Current(c)

	var raw any
	if c.Is("json") {
		var req flowDTO.SubmitTestRequest
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid body")
		}
		raw = req.IDs
	} else {
		raw = c.FormValue("ids", "[]")
	}

	ids, err := flowDTO.ParseQuestionIDs(raw)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if _, err := ctl.Sessions.Submit(c.UserContext(), m.TestSessionToken, ids); err != nil {
		if errors.Is(err, sessionService.ErrSessionNotFound) {
			return c.Redirect(sessionMW.EntryPath, fiber.StatusFound)
		}
		return serverError(c, "submit", err)
	}
	return c.Redirect("/thankyou", fiber.StatusFound)
}

// GET /answers.csv
func (ctl *TestFlowController) AnswersCSV(c *fiber.Ctx) error {
	m := sessionMW.Current(c)

	rows, err := ctl.Answers.ListBySessionAndIDs(c.UserContext(), m.TestSessionToken, sessionService.SubmittedIDs(m))
	if err != nil {
		return serverError(c, "export answers", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Question", "Answer"})
	for _, r := range rows {
		_ = w.Write([]string{r.TestAnswerQuestionID, r.TestAnswerValue})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return serverError(c, "write csv", err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="answers.csv"`)
	return c.Send(buf.Bytes())
}

// GET /result
func (ctl *TestFlowController) Result(c *fiber.Ctx) error {
	m := sessionMW.Current(c)

	questions, err := ctl.Catalog.Load(c.UserContext())
	if err != nil {
		return serverError(c, "load catalog", err)
	}
	answers, err := ctl.Answers.ListBySession(c.UserContext(), m.TestSessionToken)
	if err != nil {
		return serverError(c, "load answers", err)
	}

	res := scoring.Score(questions, answers)
	return helper.JsonOK(c, "ok", flowDTO.NewResultResponse(res, m))
}

/* ============================================================
   Resets
============================================================ */

// GET /reset: forgets the caller's session, stored records stay.
func (ctl *TestFlowController) Reset(c *fiber.Ctx) error {
	ctl.clearSessionCookie(c)
	return c.Redirect(sessionMW.EntryPath, fiber.StatusFound)
}

// GET /hard-reset: purges every session and every answer.
func (ctl *TestFlowController) HardReset(c *fiber.Ctx) error {
	if err := ctl.Sessions.PurgeAll(c.UserContext()); err != nil {
		log.Printf("[TEST] hard reset failed: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "failed to reset database")
	}
	log.Printf("[TEST] hard reset by ip=%s", c.IP())
	ctl.clearSessionCookie(c)
	return c.Redirect(sessionMW.EntryPath, fiber.StatusFound)
}
