package services

import (
	"encoding/json"
)

const draftCookieName = "checkout_draft"

// BillingDetails is the draft captured by the billing step of checkout.
type BillingDetails struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
	Zip     string `json:"zip" binding:"required"`
}

// ShippingDetails is optional; when absent the billing address ships.
type ShippingDetails struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
	Zip     string `json:"zip" binding:"required"`
}

// DraftStore keeps the multi-step checkout's billing/shipping drafts in a
// session cookie, read and written by string key, cleared when the order is
// placed.
type DraftStore struct {
	jar CookieJar
}

func NewDraftStore(jar CookieJar) *DraftStore {
	return &DraftStore{jar: jar}
}

func (d *DraftStore) read() map[string]string {
	blob, ok := d.jar.Get(draftCookieName)
	if !ok || blob == "" {
		return map[string]string{}
	}
	var values map[string]string
	if err := json.Unmarshal([]byte(blob), &values); err != nil || values == nil {
		return map[string]string{}
	}
	return values
}

func (d *DraftStore) write(values map[string]string) {
	blob, err := json.Marshal(values)
	if err != nil {
		return
	}
	d.jar.Set(draftCookieName, string(blob), cookieMaxAge)
}

func (d *DraftStore) Get(key string) (string, bool) {
	v, ok := d.read()[key]
	return v, ok
}

func (d *DraftStore) Put(key, value string) {
	values := d.read()
	values[key] = value
	d.write(values)
}

func (d *DraftStore) Clear() {
	d.jar.Delete(draftCookieName)
}

func (d *DraftStore) PutBilling(b BillingDetails) {
	blob, _ := json.Marshal(b)
	d.Put("billing", string(blob))
}

func (d *DraftStore) Billing() (BillingDetails, bool) {
	var b BillingDetails
	raw, ok := d.Get("billing")
	if !ok {
		return b, false
	}
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return b, false
	}
	return b, true
}

func (d *DraftStore) PutShipping(sh ShippingDetails) {
	blob, _ := json.Marshal(sh)
	d.Put("shipping", string(blob))
}

func (d *DraftStore) Shipping() (ShippingDetails, bool) {
	var sh ShippingDetails
	raw, ok := d.Get("shipping")
	if !ok {
		return sh, false
	}
	if err := json.Unmarshal([]byte(raw), &sh); err != nil {
		return sh, false
	}
	return sh, true
}
