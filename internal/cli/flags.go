package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/finance_manager/internal/dto"
	"github.com/shopspring/decimal"
)

// decimalFlag is a flag.Value holding an exact amount. Unset reads as zero.
type decimalFlag struct {
	value decimal.Decimal
	set   bool
}

func (d *decimalFlag) String() string {
	if d == nil || !d.set {
		return ""
	}
	return d.value.String()
}

func (d *decimalFlag) Set(s string) error {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	d.value, d.set = v, true
	return nil
}

// lineItemsFlag collects repeated -item "description:quantity:price" values.
type lineItemsFlag []dto.LineItemRequest

func (l *lineItemsFlag) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, len(*l))
	for i, item := range *l {
		parts[i] = item.Description + ":" + item.Quantity.String() + ":" + item.Price.String()
	}
	return strings.Join(parts, ",")
}

func (l *lineItemsFlag) Set(s string) error {
	i := strings.LastIndex(s, ":")
	j := -1
	if i > 0 {
		j = strings.LastIndex(s[:i], ":")
	}
	if j < 0 {
		return fmt.Errorf("item %q must look like description:quantity:price", s)
	}
	quantity, err := decimal.NewFromString(s[j+1 : i])
	if err != nil {
		return fmt.Errorf("item %q: quantity is not a number", s)
	}
	price, err := decimal.NewFromString(s[i+1:])
	if err != nil {
		return fmt.Errorf("item %q: price is not a number", s)
	}
	*l = append(*l, dto.LineItemRequest{Description: s[:j], Quantity: quantity, Price: price})
	return nil
}

// idsFlag reads a comma separated list of ids.
type idsFlag []int64

func (ids *idsFlag) String() string {
	if ids == nil {
		return ""
	}
	parts := make([]string, len(*ids))
	for i, id := range *ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

func (ids *idsFlag) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return fmt.Errorf("%q is not an id", part)
		}
		*ids = append(*ids, id)
	}
	return nil
}
