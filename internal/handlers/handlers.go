package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/chepyr/taskboard/internal/db"
)

const defaultRequestTimeout = 5 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	TaskRepo       db.TaskRepositoryInterface
	UserRepo       db.UserRepositoryInterface
	CommentRepo    db.CommentRepositoryInterface
	DB             Pinger
	RateLimiter    *RateLimiter
	WSHub          *WSHub
	Logger         zerolog.Logger
	RequestTimeout time.Duration
}

// NewRouter returns a gin engine with the middleware chain and every route
// of h registered.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(h.Logger))
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	h.RegisterRoutes(router)
	return router
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	taskRouter := router.Group("/task")
	taskRouter.POST("/getFilterTask", h.GetFilterTask)
	taskRouter.GET("/getAllTasks", h.GetAllTasks)
	taskRouter.POST("/createTask", h.CreateTask)
	taskRouter.PUT("/modTaskComplete", h.ModTaskComplete)
	taskRouter.PUT("/modTask", h.ModTask)
	taskRouter.DELETE("/deleteTask", h.DeleteTask)

	userRouter := router.Group("/user")
	userRouter.GET("/getAllUser", h.GetAllUsers)
	userRouter.POST("/createUser", h.CreateUser)

	commentRouter := router.Group("/comment")
	commentRouter.POST("/getTaskComment", h.GetTaskComments)
	commentRouter.POST("/createComment", h.CreateComment)
	commentRouter.PUT("/modComment", h.ModComment)
	commentRouter.DELETE("/deleteComment", h.DeleteComment)

	if h.WSHub != nil {
		router.GET("/ws", h.HandleWebSocket)
	}
	router.GET("/healthz", h.Healthz)
}

func (h *Handler) Healthz(c *gin.Context) {
	if h.DB != nil {
		ctx, cancel := h.storeContext(c)
		defer cancel()
		if err := h.DB.PingContext(ctx); err != nil {
			h.logger(c).Error().Err(err).Msg("failed to ping database")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, newAPIError(kindStoreError, err.Error()))
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// storeContext bounds a store call by the request context and the
// configured request timeout.
func (h *Handler) storeContext(c *gin.Context) (context.Context, context.CancelFunc) {
	timeout := h.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}

// logger prefers the request scoped logger installed by RequestLogger.
func (h *Handler) logger(c *gin.Context) *zerolog.Logger {
	if l := zerolog.Ctx(c.Request.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &h.Logger
}

func (h *Handler) notify(event string, taskID int64) {
	if h.WSHub != nil {
		h.WSHub.BroadcastTaskEvent(event, taskID)
	}
}

func created(c *gin.Context, message string) {
	c.JSON(http.StatusCreated, gin.H{"message": message})
}
