package shopapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mengsruy/webstore/internal/domain"
	"github.com/mengsruy/webstore/internal/order"
	"github.com/mengsruy/webstore/internal/store"
	"github.com/mengsruy/webstore/internal/webserver"
)

var intake *order.Intake

// RegisterRoutes wires the public storefront routes. The notification sink
// is constructed once from config; tests substitute their own Intake.
func RegisterRoutes(sink order.Sink) {
	intake = order.NewIntake(sink)

	webserver.GET("/", home)
	webserver.GET("/product/:id", productDetail)
	webserver.GET("/search", search)
	webserver.GET("/cart", cart)
	webserver.GET("/order", orderForm)
	webserver.POST("/order", orderSubmit)
	webserver.GET("/order/complete", orderComplete)
}

func home(c echo.Context) error {
	ctx := c.Request().Context()
	// The landing page doubles as bootstrap: schema and seed rows are
	// ensured before the first listing.
	if err := webserver.GetApp(c).BootstrapStore(ctx); err != nil {
		zap.L().Error("store bootstrap failed", zap.Error(err))
	}
	catalog := store.NewCatalog(webserver.GetDB(c))
	products, err := catalog.ListAll(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return webserver.RenderPage(c, "home.html", echo.Map{
		"Products": domain.ProductViews(products),
	})
}

func productDetail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	catalog := store.NewCatalog(webserver.GetDB(c))
	p, err := catalog.GetByID(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return webserver.RenderPage(c, "product_detail.html", echo.Map{
		"Product": domain.NewProductView(*p),
	})
}

func search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	catalog := store.NewCatalog(webserver.GetDB(c))
	products, err := catalog.Search(c.Request().Context(), q)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return webserver.RenderPage(c, "search.html", echo.Map{
		"Query":    q,
		"Products": domain.ProductViews(products),
	})
}

func cart(c echo.Context) error {
	return webserver.RenderPage(c, "cart.html", nil)
}

func orderForm(c echo.Context) error {
	return webserver.RenderPage(c, "order.html", nil)
}

func orderSubmit(c echo.Context) error {
	payload := order.Payload{
		Name:      strings.TrimSpace(c.FormValue("name")),
		Email:     strings.TrimSpace(c.FormValue("email")),
		Phone:     strings.TrimSpace(c.FormValue("phone")),
		Note:      strings.TrimSpace(c.FormValue("note")),
		OrderJSON: c.FormValue("order_json"),
	}
	// Delivery is best-effort; the shopper is redirected regardless.
	intake.Submit(c.Request().Context(), payload)
	return c.Redirect(http.StatusFound, "/order/complete")
}

func orderComplete(c echo.Context) error {
	return webserver.RenderPage(c, "order_complete.html", nil)
}
