package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"portfolioBackend/internal/errs"
	"portfolioBackend/internal/models"
	"portfolioBackend/internal/msgs"
	"portfolioBackend/internal/services"
)

type RestHandler struct {
	authService    *services.AuthenticationService
	messageService *services.MessageService
}

func NewRestHandler(
	authService *services.AuthenticationService,
	messageService *services.MessageService,
) *RestHandler {
	return &RestHandler{
		authService:    authService,
		messageService: messageService,
	}
}

// Index godoc
// @Summary      API info
// @Description  Liveness check with the endpoint map
// @Produce      json
// @Success      200  {object}  models.InfoResponse
// @Router       / [get]
func (rh *RestHandler) Index(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, models.InfoResponse{
		Success: true,
		Message: msgs.MsgAPIRunning,
		Version: "1.0.0",
		Endpoints: map[string]string{
			"health":   "/api/health",
			"contact":  "/api/contact",
			"login":    "/api/admin/login",
			"messages": "/api/admin/messages",
			"stats":    "/api/admin/stats",
		},
	})
}

func (rh *RestHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, models.HealthResponse{
		Success:   true,
		Message:   msgs.MsgAPIHealthy,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// SubmitContact godoc
// @Summary      Submit a contact form message
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.ContactResponse
// @Failure      400  {object}  models.Response
// @Failure      500  {object}  models.Response
// @Router       /api/contact [post]
func (rh *RestHandler) SubmitContact(ctx *gin.Context) {
	var errors []error

	var contactData models.ContactRequestBody
	err := ctx.BindJSON(&contactData)
	if err != nil {
		log.Println("Error contact data json binding:", err)
		errors = append(errors, errs.ErrInvalidRequestBody)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgValidationFailed,
			Errors:  errors,
		})
		return
	}

	message, submitErrs := rh.messageService.SubmitMessage(&contactData)
	if len(submitErrs) > 0 {
		if isFieldErrors(submitErrs) {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
				Success: false,
				Message: msgs.MsgValidationFailed,
				Errors:  submitErrs,
			})
			return
		}
		log.Println("Database error:", submitErrs)
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgMessageSaveFailed,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.ContactResponse{
		Success:   true,
		Message:   msgs.MsgMessageReceived,
		MessageID: message.ID,
	})
}

// Login godoc
// @Summary      Admin login
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.LoginResponse
// @Failure      400  {object}  models.Response
// @Failure      401  {object}  models.Response
// @Router       /api/admin/login [post]
func (rh *RestHandler) Login(ctx *gin.Context) {
	var loginData models.LoginRequestBody
	err := ctx.BindJSON(&loginData)
	if err != nil {
		log.Println("Error login data json binding:", err)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgInvalidInputData,
		})
		return
	}

	loginResponse, loginErrs := rh.authService.Login(&loginData)
	if len(loginErrs) > 0 {
		if containsError(loginErrs, errs.ErrInvalidParams) {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
				Success: false,
				Message: msgs.MsgInvalidInputData,
			})
			return
		}
		if containsError(loginErrs, errs.ErrInvalidCredentials) {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: msgs.MsgInvalidCredentials,
			})
			return
		}
		log.Println("Login error:", loginErrs)
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, loginResponse)
}

// GetMessages godoc
// @Summary      List messages with pagination
// @Produce      json
// @Param        page   query  int  false  "Page number"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  models.MessageListResponse
// @Failure      401  {object}  models.Response
// @Failure      500  {object}  models.Response
// @Router       /api/admin/messages [get]
func (rh *RestHandler) GetMessages(ctx *gin.Context) {
	page := ctx.Query("page")
	limit := ctx.Query("limit")

	pageInt, err := strconv.Atoi(page)
	if err != nil || pageInt < 1 {
		pageInt = 1
	}

	limitInt, err := strconv.Atoi(limit)
	if err != nil || limitInt < 1 {
		limitInt = 10
	}

	response, listErrs := rh.messageService.GetMessagesWithPagination(pageInt, limitInt)
	if len(listErrs) > 0 {
		log.Println("Database error:", listErrs)
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgMessagesFetchFailed,
		})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (rh *RestHandler) MarkMessageAsRead(ctx *gin.Context) {
	id, ok := rh.messageIDParam(ctx)
	if !ok {
		return
	}

	if markErrs := rh.messageService.MarkMessageAsRead(id); len(markErrs) > 0 {
		if containsError(markErrs, errs.ErrMessageNotFound) {
			ctx.AbortWithStatusJSON(http.StatusNotFound, models.Response{
				Success: false,
				Message: msgs.MsgMessageNotFound,
			})
			return
		}
		log.Println("Database error:", markErrs)
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgMessageUpdateFailed,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgMessageMarkedRead,
	})
}

func (rh *RestHandler) DeleteMessage(ctx *gin.Context) {
	id, ok := rh.messageIDParam(ctx)
	if !ok {
		return
	}

	if deleteErrs := rh.messageService.DeleteMessage(id); len(deleteErrs) > 0 {
		if containsError(deleteErrs, errs.ErrMessageNotFound) {
			ctx.AbortWithStatusJSON(http.StatusNotFound, models.Response{
				Success: false,
				Message: msgs.MsgMessageNotFound,
			})
			return
		}
		log.Println("Database error:", deleteErrs)
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgMessageDeleteFailed,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgMessageDeleted,
	})
}

func (rh *RestHandler) GetStats(ctx *gin.Context) {
	stats, statsErrs := rh.messageService.GetStats()
	if len(statsErrs) > 0 {
		log.Println("Database error:", statsErrs)
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgStatsFetchFailed,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.StatsResponse{
		Success: true,
		Stats:   *stats,
	})
}

func (rh *RestHandler) messageIDParam(ctx *gin.Context) (uint, bool) {
	idInt, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || idInt < 1 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidParams},
		})
		return 0, false
	}
	return uint(idInt), true
}

func containsError(errors []error, target error) bool {
	for _, err := range errors {
		if err == target {
			return true
		}
	}
	return false
}

// isFieldErrors reports whether every error in the list is a known
// validation constant, as opposed to a storage failure.
func isFieldErrors(errors []error) bool {
	for _, err := range errors {
		if _, ok := err.(errs.Error); !ok {
			return false
		}
	}
	return true
}
