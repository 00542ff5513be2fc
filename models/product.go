package models

import "encoding/base64"

// Product is a marketplace listing. Price is in whole currency units, the
// image is stored base64-encoded so it can be served straight into an <img>
// data URL without re-encoding.
type Product struct {
	ProductID          uint   `gorm:"primaryKey;autoIncrement" json:"productid"`
	ProductName        string `gorm:"size:200;not null" json:"productname"`
	ProductDescription string `json:"productdescription"`
	Price              int64  `gorm:"not null" json:"price"`
	Image              []byte `json:"-"`
	UserID             uint   `gorm:"index" json:"user_id"`

	Tags []Tag `gorm:"many2many:products_tags;" json:"tags,omitempty"`
}

// EncodeImage stores raw image bytes base64-encoded.
func (p *Product) EncodeImage(raw []byte) {
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(raw)))
	base64.StdEncoding.Encode(encoded, raw)
	p.Image = encoded
}

// DecodeImage returns the stored base64 image string, or "" when the product
// has no image.
func (p *Product) DecodeImage() string {
	return string(p.Image)
}

type Tag struct {
	TagID   uint   `gorm:"primaryKey;autoIncrement" json:"tagid"`
	TagName string `gorm:"size:50;not null;uniqueIndex" json:"tagname"`

	Products []Product `gorm:"many2many:products_tags;" json:"products,omitempty"`
}
