package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. Keys are looked up as printf formats by message.Printer.
const (
	CouponCodeRequired     = "coupon.code_required"
	CouponNotFound         = "coupon.not_found"
	CouponInactive         = "coupon.inactive"
	CouponNotYetStarted    = "coupon.not_yet_started"
	CouponExpired          = "coupon.expired"
	CouponUsageLimit       = "coupon.usage_limit_reached"
	CouponBelowMinimum     = "coupon.below_minimum"
	CouponPerUserLimit     = "coupon.per_user_limit_reached"
	CouponInvalidSubtotal  = "coupon.invalid_subtotal"
	CheckoutStepNotAllowed = "checkout.step_not_allowed"
	CheckoutInvalidAddress = "checkout.invalid_address"
	TooManyRequests        = "common.too_many_requests"
)

var catalogs = map[language.Tag]map[string]string{
	language.Turkish: {
		CouponCodeRequired:     "Kupon kodu gerekli",
		CouponNotFound:         "Geçersiz kupon kodu",
		CouponInactive:         "Bu kupon aktif değil",
		CouponNotYetStarted:    "Bu kupon henüz geçerli değil",
		CouponExpired:          "Bu kuponun süresi dolmuş",
		CouponUsageLimit:       "Bu kuponun kullanım limiti dolmuş",
		CouponBelowMinimum:     "Bu kupon için minimum sipariş tutarı %s TL",
		CouponPerUserLimit:     "Bu kuponu kullanım hakkınız dolmuş",
		CouponInvalidSubtotal:  "Geçersiz sepet tutarı",
		CheckoutStepNotAllowed: "Bu adıma geçmek için önceki adımları tamamlayın",
		CheckoutInvalidAddress: "Adres bilgileri eksik veya hatalı",
		TooManyRequests:        "Çok fazla istek. Lütfen biraz bekleyin.",
	},
	language.English: {
		CouponCodeRequired:     "Coupon code is required",
		CouponNotFound:         "Invalid coupon code",
		CouponInactive:         "This coupon is not active",
		CouponNotYetStarted:    "This coupon is not valid yet",
		CouponExpired:          "This coupon has expired",
		CouponUsageLimit:       "This coupon has reached its usage limit",
		CouponBelowMinimum:     "Minimum order amount for this coupon is %s TL",
		CouponPerUserLimit:     "You have already used this coupon the maximum number of times",
		CouponInvalidSubtotal:  "Invalid cart subtotal",
		CheckoutStepNotAllowed: "Complete the previous steps first",
		CheckoutInvalidAddress: "Shipping address is incomplete or invalid",
		TooManyRequests:        "Too many requests. Please wait a moment.",
	},
}

func init() {
	for tag, messages := range catalogs {
		for key, msg := range messages {
			if err := message.SetString(tag, key, msg); err != nil {
				panic("i18n: register " + key + ": " + err.Error())
			}
		}
	}
}

// Translate renders key for tag.
func Translate(tag language.Tag, key string, args ...any) string {
	return Printer(tag).Sprintf(key, args...)
}
