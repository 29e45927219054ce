package payment

import (
	"net/url"
	"strconv"
)

const qrBaseURL = "https://qr.sepay.vn/img"

// QR builds sepay transfer QR image URLs for checkout. The guest scans the
// code and pays manually; staff confirm the payment by hand afterwards.
type QR struct {
	Bank        string
	Account     string
	AccountName string
}

// ImageURL returns the QR image for a transfer of amount VND to the
// configured account.
func (q QR) ImageURL(amount float64) string {
	params := url.Values{}
	params.Set("bank", q.Bank)
	params.Set("acc", q.Account)
	params.Set("template", "qronly")
	params.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	params.Set("des", "")
	return qrBaseURL + "?" + params.Encode()
}
