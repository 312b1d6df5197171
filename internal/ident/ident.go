// Package ident produces the human facing business identifiers
// (CLT00001, FAC0000001, EXP3F9A...) attached to every entity.
package ident

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
)

// Kind names an entity family with its own identifier sequence.
type Kind string

const (
	KindClient   Kind = "client"
	KindDriver   Kind = "driver"
	KindManager  Kind = "manager"
	KindAgent    Kind = "agent"
	KindShipment Kind = "shipment"
	KindTour     Kind = "tour"
	KindInvoice  Kind = "invoice"
	KindPayment  Kind = "payment"
	KindIncident Kind = "incident"
	KindClaim    Kind = "claim"
)

const (
	shipmentPrefix    = "EXP"
	shipmentSuffixLen = 12
)

type format struct {
	prefix string
	width  int
}

var formats = map[Kind]format{
	KindClient:   {prefix: "CLT", width: 5},
	KindDriver:   {prefix: "DRV", width: 5},
	KindManager:  {prefix: "MGR", width: 5},
	KindAgent:    {prefix: "AGT", width: 5},
	KindTour:     {prefix: "TOUR", width: 6},
	KindIncident: {prefix: "INC", width: 6},
	KindClaim:    {prefix: "REC", width: 6},
	KindInvoice:  {prefix: "FAC", width: 7},
	KindPayment:  {prefix: "PAY", width: 7},
}

// Sequential reports whether kind is numbered from a counter.
// Shipments use random suffixes instead.
func Sequential(kind Kind) bool {
	_, ok := formats[kind]
	return ok
}

// Next returns the identifier following previous for kind.
// An empty previous starts the sequence at 1.
func Next(kind Kind, previous string) (string, error) {
	if kind == KindShipment {
		return NewShipmentNumber(), nil
	}

	if previous == "" {
		return Format(kind, 1)
	}

	n, err := Parse(kind, previous)
	if err != nil {
		return "", err
	}

	return Format(kind, n+1)
}

// Format renders the n-th identifier of kind.
func Format(kind Kind, n int64) (string, error) {
	f, ok := formats[kind]
	if !ok {
		return "", apperr.Validation("unknown identifier kind %q", kind)
	}

	if n < 1 {
		return "", apperr.Validation("identifier sequence must start at 1, got %d", n)
	}

	return fmt.Sprintf("%s%0*d", f.prefix, f.width, n), nil
}

// Parse extracts the sequence number of a <PREFIX><digits> identifier.
func Parse(kind Kind, id string) (int64, error) {
	f, ok := formats[kind]
	if !ok {
		return 0, apperr.Validation("unknown identifier kind %q", kind)
	}

	digits, found := strings.CutPrefix(id, f.prefix)
	if !found || digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, apperr.Validation("malformed %s identifier %q", kind, id)
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, apperr.Validation("malformed %s identifier %q: %v", kind, id, err)
	}

	return n, nil
}

// NewShipmentNumber returns EXP followed by 12 random uppercase hex characters.
func NewShipmentNumber() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return shipmentPrefix + strings.ToUpper(hex[:shipmentSuffixLen])
}

// IsShipmentNumber reports whether s has the shape produced by NewShipmentNumber.
func IsShipmentNumber(s string) bool {
	suffix, found := strings.CutPrefix(s, shipmentPrefix)
	if !found || len(suffix) != shipmentSuffixLen {
		return false
	}

	return strings.TrimLeft(suffix, "0123456789ABCDEF") == ""
}
