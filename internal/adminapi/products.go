package adminapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mengsruy/webstore/internal/store"
	"github.com/mengsruy/webstore/internal/webserver"
)

// registerProductRoutes registers guarded dashboard and product CRUD routes
func registerProductRoutes() {
	webserver.GET("/admin/dashboard", dashboard, RequireAdmin)
	webserver.GET("/admin/products", listProducts, RequireAdmin)
	webserver.GET("/admin/products/new", newProductForm, RequireAdmin)
	webserver.POST("/admin/products/new", createProduct, RequireAdmin)
	webserver.GET("/admin/products/:id/edit", editProductForm, RequireAdmin)
	webserver.POST("/admin/products/:id/edit", updateProduct, RequireAdmin)
	webserver.GET("/admin/products/:id/delete", deleteProductConfirm, RequireAdmin)
	webserver.POST("/admin/products/:id/delete", deleteProduct, RequireAdmin)
}

// dashboardKPIs are static showcase figures; only the product count is live.
type dashboardKPIs struct {
	VisitorsToday  int
	ConversionRate float64
	RevenueToday   float64
	PendingOrders  int
}

var (
	chartLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	chartData   = []int{12, 19, 9, 14, 22, 17, 25}
)

func dashboard(c echo.Context) error {
	catalog := store.NewCatalog(webserver.GetDB(c))
	total, err := catalog.Count(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return webserver.RenderPage(c, "admin_dashboard.html", echo.Map{
		"TotalProducts": total,
		"KPIs": dashboardKPIs{
			VisitorsToday:  1248,
			ConversionRate: 3.7,
			RevenueToday:   1894.50,
			PendingOrders:  5,
		},
		"ChartLabels": chartLabels,
		"ChartData":   chartData,
	})
}

func listProducts(c echo.Context) error {
	catalog := store.NewCatalog(webserver.GetDB(c))
	products, err := catalog.ListAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return webserver.RenderPage(c, "admin_products.html", echo.Map{
		"Products": products,
	})
}

func newProductForm(c echo.Context) error {
	return webserver.RenderPage(c, "admin_product_form.html", echo.Map{"Mode": "new"})
}

func createProduct(c echo.Context) error {
	catalog := store.NewCatalog(webserver.GetDB(c))
	p, err := catalog.Create(c.Request().Context(), productForm(c))
	if errors.Is(err, store.ErrValidation) {
		webserver.AddFlash(c, "warning", "Please fill all required fields.")
		return c.Redirect(http.StatusFound, "/admin/products/new")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	zap.L().Info("product created", zap.Int64("id", p.ID), zap.String("title", p.Title))
	webserver.AddFlash(c, "success", "Product created.")
	return c.Redirect(http.StatusFound, "/admin/products")
}

func editProductForm(c echo.Context) error {
	id, err := parseIDParam(c)
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
	return webserver.RenderPage(c, "admin_product_form.html", echo.Map{
		"Mode":    "edit",
		"Product": p,
	})
}

func updateProduct(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	catalog := store.NewCatalog(webserver.GetDB(c))
	p, err := catalog.Update(c.Request().Context(), id, productForm(c))
	if errors.Is(err, store.ErrValidation) {
		webserver.AddFlash(c, "warning", "Please fill all required fields.")
		return c.Redirect(http.StatusFound, "/admin/products/"+c.Param("id")+"/edit")
	}
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	zap.L().Info("product updated", zap.Int64("id", p.ID))
	webserver.AddFlash(c, "success", "Product updated.")
	return c.Redirect(http.StatusFound, "/admin/products")
}

func deleteProductConfirm(c echo.Context) error {
	id, err := parseIDParam(c)
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
	return webserver.RenderPage(c, "admin_confirm_delete.html", echo.Map{
		"Product": p,
	})
}

func deleteProduct(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	catalog := store.NewCatalog(webserver.GetDB(c))
	err = catalog.Delete(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	zap.L().Info("product deleted", zap.Int64("id", id))
	webserver.AddFlash(c, "success", "Product deleted.")
	return c.Redirect(http.StatusFound, "/admin/products")
}

func productForm(c echo.Context) store.ProductForm {
	return store.ProductForm{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Price:       c.FormValue("price"),
		Image:       c.FormValue("image"),
	}
}

func parseIDParam(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
