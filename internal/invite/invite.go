// Package invite implements single-use invite codes and their consumed
// ledger. The ledger lives in the same key-value store as the task
// snapshot, under its own key.
package invite

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
)

const (
	prefix     = "INV"
	codeLength = 11 // prefix + 8 random characters

	// LedgerKey is the key-value entry holding consumed codes.
	LedgerKey = "used_invites"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generate returns a fresh invite code.
func Generate() string {
	var b strings.Builder
	b.WriteString(prefix)
	for i := 0; i < codeLength-len(prefix); i++ {
		b.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return b.String()
}

// IsValidCode reports whether code has the expected shape.
func IsValidCode(code string) bool {
	return strings.HasPrefix(code, prefix) && len(code) == codeLength
}

// KV is the slice of the storage layer the ledger needs.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
}

// Ledger tracks which codes have been consumed on this device.
type Ledger struct {
	kv KV
}

func NewLedger(kv KV) *Ledger {
	return &Ledger{kv: kv}
}

// UsedCodes returns every consumed code.
func (l *Ledger) UsedCodes(ctx context.Context) ([]string, error) {
	raw, ok, err := l.kv.Get(ctx, LedgerKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var codes []string
	if err := json.Unmarshal([]byte(raw), &codes); err != nil {
		return nil, fmt.Errorf("decode invite ledger: %w", err)
	}
	return codes, nil
}

// IsUsed reports whether the code was already consumed. Malformed codes
// count as used so they can never be redeemed.
func (l *Ledger) IsUsed(ctx context.Context, code string) (bool, error) {
	if !IsValidCode(code) {
		return true, nil
	}
	codes, err := l.UsedCodes(ctx)
	if err != nil {
		return false, err
	}
	for _, c := range codes {
		if c == code {
			return true, nil
		}
	}
	return false, nil
}

// MarkUsed records the code as consumed. Marking an already-consumed or
// malformed code changes nothing.
func (l *Ledger) MarkUsed(ctx context.Context, code string) error {
	if !IsValidCode(code) {
		return nil
	}
	codes, err := l.UsedCodes(ctx)
	if err != nil {
		return err
	}
	for _, c := range codes {
		if c == code {
			return nil
		}
	}
	codes = append(codes, code)
	data, err := json.Marshal(codes)
	if err != nil {
		return fmt.Errorf("encode invite ledger: %w", err)
	}
	return l.kv.Put(ctx, LedgerKey, string(data))
}
