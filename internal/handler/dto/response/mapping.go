package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

const dateLayout = time.DateOnly

// copyOptions renders money as decimal strings and ids as their canonical form.
var copyOptions = copier.Option{
	CaseSensitive: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).String(), nil
			},
		},
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

func copyInto(dst, src any) {
	// both sides are fixed structs; a failure here is a programming error
	if err := copier.CopyWithOption(dst, src, copyOptions); err != nil {
		panic(err)
	}
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func idString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
