package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"naijapath/internal/domain"
	"naijapath/internal/service"
)

// QuizHandler holds the dependencies for the quiz endpoints.
type QuizHandler struct {
	logger      *zap.Logger
	quizSvc     *service.QuizService
	analysisSvc *service.CareerAnalysisService
	shareSvc    *service.ShareTokenService
	limiter     service.AnalysisRateLimiter
	careerCount int
}

func NewQuizHandler(
	logger *zap.Logger,
	quizSvc *service.QuizService,
	analysisSvc *service.CareerAnalysisService,
	shareSvc *service.ShareTokenService,
	limiter service.AnalysisRateLimiter,
	careerCount int,
) *QuizHandler {
	return &QuizHandler{
		logger:      logger,
		quizSvc:     quizSvc,
		analysisSvc: analysisSvc,
		shareSvc:    shareSvc,
		limiter:     limiter,
		careerCount: careerCount,
	}
}

// Health handles GET /healthz.
func (h *QuizHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"questions": len(h.quizSvc.Questions()),
		"careers":   h.careerCount,
	})
}

// ListQuestions handles GET /quiz/questions.
func (h *QuizHandler) ListQuestions(c *gin.Context) {
	questions := h.quizSvc.Questions()
	c.JSON(http.StatusOK, gin.H{
		"questions":         questions,
		"count":             len(questions),
		"estimated_minutes": h.quizSvc.EstimatedMinutes(),
	})
}

// Analyze handles POST /quiz/analysis.
func (h *QuizHandler) Analyze(c *gin.Context) {
	var req struct {
		Answers []domain.Answer `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analysis request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, try again later"})
		return
	}

	result, err := h.analysisSvc.Analyze(req.Answers)
	if err != nil {
		h.logger.Error("career analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "couldn't compute results"})
		return
	}

	resp := gin.H{"result": result}
	if token, err := h.shareSvc.Issue(result); err == nil {
		resp["share_token"] = token
	} else if !errors.Is(err, service.ErrShareTokenInvalid) {
		h.logger.Warn("share token issue failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, resp)
}

// SharedResult handles GET /quiz/results/:token.
func (h *QuizHandler) SharedResult(c *gin.Context) {
	claims, err := h.shareSvc.Parse(c.Param("token"))
	if err != nil {
		if errors.Is(err, service.ErrShareTokenExpired) {
			c.JSON(http.StatusGone, gin.H{"error": "shared result expired"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "shared result not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result_id":  claims.ResultID,
		"matches":    claims.Matches,
		"share_text": claims.ShareText(),
	})
}
