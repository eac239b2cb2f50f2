package router

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/ranahan-restaurant/config"
	"github.com/yeremiapane/ranahan-restaurant/controllers"
	"github.com/yeremiapane/ranahan-restaurant/metrics"
	"github.com/yeremiapane/ranahan-restaurant/middlewares"
	"github.com/yeremiapane/ranahan-restaurant/queue"
	"github.com/yeremiapane/ranahan-restaurant/services"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Deps -> dependensi yang dibangun di main
type Deps struct {
	DB        *gorm.DB
	Config    *config.Config
	MenuCache *services.MenuCache
	Publisher queue.Publisher
}

func SetupRouter(deps Deps) *gin.Engine {
	cfg := deps.Config
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	publisher := deps.Publisher
	if publisher == nil {
		publisher = queue.NopPublisher{}
	}

	metrics.Register()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigins))
	r.Use(middlewares.SessionGate())

	// Services
	tables := services.NewTableRegistry(deps.DB, publisher)
	users := services.NewUserDirectory(deps.DB)
	bookings := services.NewBookingManager(deps.DB, tables, users, publisher)

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(deps.DB)
	tableCtrl := controllers.NewTableController(tables)
	bookingCtrl := controllers.NewBookingController(bookings)
	promoCtrl := controllers.NewPromotionController(deps.DB)
	menuCtrl := controllers.NewMenuController(deps.DB, deps.MenuCache)
	stockCtrl := controllers.NewStockController(deps.DB, cfg.StockLowThreshold)
	staffCtrl := controllers.NewStaffController(deps.DB)
	orderCtrl := controllers.NewOrderController(deps.DB)
	paymentCtrl := controllers.NewPaymentController(deps.DB)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	apiLimiter := middlewares.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	api := r.Group("/api")
	api.Use(apiLimiter.RateLimit())
	api.Use(middlewares.SessionMiddleware())

	// Rate limiter lebih ketat untuk login/register
	authLimiter := middlewares.NewStrictRateLimiter()
	auth := api.Group("/")
	auth.Use(authLimiter.RateLimit())
	{
		auth.POST("/register", userCtrl.Register)
		auth.POST("/login", userCtrl.Login)
	}
	api.POST("/logout", userCtrl.Logout)

	// USERS
	api.GET("/users", userCtrl.GetAllUsers)
	api.PUT("/users/:id/role", userCtrl.UpdateUserRole)
	api.DELETE("/users/:id", userCtrl.DeleteUser)

	// TABLES
	api.GET("/tables", tableCtrl.GetAllTables)
	api.GET("/tables/:id/status", tableCtrl.GetTableStatus)
	api.PUT("/tables/:id/status", tableCtrl.UpdateTableStatus)

	// BOOKINGS
	api.POST("/bookings", bookingCtrl.CreateBooking)
	api.GET("/bookings/byUser/:userId", bookingCtrl.GetBookingsByUser)
	api.PUT("/bookings/:id", bookingCtrl.UpdateBooking)
	api.DELETE("/bookings/:id", bookingCtrl.CancelBooking)

	// PROMOTIONS
	api.GET("/promotions", promoCtrl.GetAllPromotions)
	api.GET("/promotions/:id", promoCtrl.GetPromotionByID)
	api.POST("/promotions", promoCtrl.CreatePromotion)
	api.PUT("/promotions/:id", promoCtrl.UpdatePromotion)
	api.DELETE("/promotions/:id", promoCtrl.DeletePromotion)

	// MENU
	api.GET("/menu", menuCtrl.GetAllMenus)
	api.GET("/menu/:id", menuCtrl.GetMenuByID)
	api.POST("/menu", menuCtrl.CreateMenu)
	api.PUT("/menu/:id", menuCtrl.UpdateMenu)
	api.DELETE("/menu/:id", menuCtrl.DeleteMenu)

	// STOCK
	api.GET("/stock", stockCtrl.GetStock)
	api.GET("/stock/export", stockCtrl.ExportStock)
	api.POST("/stock", stockCtrl.CreateStock)
	api.DELETE("/stock/:id", stockCtrl.DeleteStock)

	// STAFF
	api.GET("/staff", staffCtrl.GetAllStaff)
	api.GET("/staff/:id", staffCtrl.GetStaffByID)
	api.POST("/staff", staffCtrl.CreateStaff)
	api.PUT("/staff/:id", staffCtrl.UpdateStaff)
	api.DELETE("/staff/:id", staffCtrl.DeleteStaff)

	// ORDERS
	api.POST("/orders", orderCtrl.CreateOrder)
	api.POST("/orders/new", orderCtrl.CreateOrder)
	api.GET("/orders", orderCtrl.GetOrders)
	api.GET("/orders/list", orderCtrl.ListOrdersWithItems)
	api.GET("/orders/latest/:table_no", orderCtrl.GetLatestByTable)
	api.GET("/orders/table/:table_no", orderCtrl.GetOrdersByTable)
	api.GET("/orders/:id/items", orderCtrl.GetOrderItems)
	api.PUT("/orders/:id/status", orderCtrl.UpdateOrderStatus)
	api.DELETE("/orders/:id", orderCtrl.DeleteOrder)

	// PAYMENTS (catatan saja)
	api.POST("/payments", paymentCtrl.CreatePayment)
	api.GET("/payments", paymentCtrl.GetPayments)
	api.GET("/payments/export", paymentCtrl.ExportPayments)
	api.GET("/payments/:id/receipt", paymentCtrl.GetReceipt)

	mountStatic(r, cfg.StaticDir)
	return r
}

// mountStatic melayani halaman frontend; akses per role dijaga SessionGate
func mountStatic(r *gin.Engine, dir string) {
	if dir == "" {
		return
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		return
	}
	r.NoRoute(gin.WrapH(http.FileServer(http.Dir(abs))))
}
