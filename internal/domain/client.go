package domain

import "github.com/shopspring/decimal"

// DefaultClientRating is given to clients registered without a rating.
var DefaultClientRating = decimal.NewFromInt(5)

// Client is a renter. Rating is invalid only on a client not yet stored, where
// it means no rating was given.
type Client struct {
	ID               int64               `json:"id"`
	FullName         string              `json:"full_name"`
	DriverLicenseNum string              `json:"driver_license_num"`
	PassportData     string              `json:"passport_data"`
	Phone            string              `json:"phone"`
	BirthDate        Date                `json:"birth_date"`
	Rating           decimal.NullDecimal `json:"rating"`
	IsBlacklisted    bool                `json:"is_blacklisted"`
}

type ClientPatch struct {
	FullName         Optional[string]          `json:"full_name"`
	DriverLicenseNum Optional[string]          `json:"driver_license_num"`
	PassportData     Optional[string]          `json:"passport_data"`
	Phone            Optional[string]          `json:"phone"`
	BirthDate        Optional[Date]            `json:"birth_date"`
	Rating           Optional[decimal.Decimal] `json:"rating"`
	IsBlacklisted    Optional[bool]            `json:"is_blacklisted"`
}

func (p ClientPatch) Apply(c *Client) {
	p.FullName.applyTo(&c.FullName)
	p.DriverLicenseNum.applyTo(&c.DriverLicenseNum)
	p.PassportData.applyTo(&c.PassportData)
	p.Phone.applyTo(&c.Phone)
	p.BirthDate.applyTo(&c.BirthDate)
	if p.Rating.Set {
		c.Rating = decimal.NewNullDecimal(p.Rating.Value)
	}
	p.IsBlacklisted.applyTo(&c.IsBlacklisted)
}
