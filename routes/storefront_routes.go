package routes

import (
	store_featured "github.com/ArmanNagariya-Developer/azhari-attar/controllers/storefront/featured_controller"
	store_filter "github.com/ArmanNagariya-Developer/azhari-attar/controllers/storefront/filter_controller"
	store_product "github.com/ArmanNagariya-Developer/azhari-attar/controllers/storefront/product_controller"
	store_wishlist "github.com/ArmanNagariya-Developer/azhari-attar/controllers/storefront/wishlist_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("/:id", store_product.GetProductByID)        // Single product
		products.GET("/:id/share", store_product.GetProductShare) // WhatsApp hand-off
		products.GET("/export", store_product.ExportProductsToExcel)
	}

	// View-shaped listings
	store.GET("/home/products", store_product.GetHomeProducts) // Tabbed, catalog order
	store.GET("/shop/products", store_product.GetShopProducts) // Faceted + sorted

	store.GET("/filters/metadata", store_filter.GetFilterMetadata)

	// Featured carousel
	featured := store.Group("/featured")
	{
		featured.GET("", store_featured.GetFeatured)
		featured.POST("/next", store_featured.NextFeatured)
		featured.POST("/prev", store_featured.PrevFeatured)
		featured.POST("/select/:index", store_featured.SelectFeatured)
	}

	// Wishlist
	wishlist := store.Group("/wishlist")
	{
		wishlist.GET("", store_wishlist.GetWishlist)
		wishlist.POST("", store_wishlist.AddWishlistItem)
		wishlist.DELETE("", store_wishlist.ClearWishlist)
		wishlist.DELETE("/:id", store_wishlist.RemoveWishlistItem)
		wishlist.GET("/count", store_wishlist.GetWishlistCount)
		wishlist.GET("/ws", store_wishlist.WishlistWebSocket)
	}
}
