package burn

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
)

// summarize renders the human readable burn summary of an entry.
// An empty string means nothing unexpected happened to the token.
func summarize(entry *model.TokenEntry, reasons []string) string {
	parts := make([]string, 0, 1+len(entry.FailedColorings))

	headline := burnHeadline(entry)
	switch {
	case headline != "" && len(reasons) > 0:
		parts = append(parts, headline+". Reason(s): "+strings.Join(reasons, ", "))
	case headline != "":
		parts = append(parts, headline)
	case len(reasons) > 0:
		parts = append(parts, strings.Join(reasons, ", "))
	}

	for _, failure := range entry.FailedColorings {
		parts = append(parts, fmt.Sprintf("Invalid coloring at pushdata idx %d: %s", failure.PushdataIdx, failure.Message))
	}
	return strings.Join(parts, ". ")
}

func burnHeadline(entry *model.TokenEntry) string {
	actual := entry.ActualBurnAmount
	intended := new(big.Int).SetUint64(entry.IntentionalBurnAmount)

	if actual.Sign() == 0 {
		switch {
		case entry.BurnsMintBatons:
			return "Unexpected burn: Burns mint baton(s)"
		case intended.Sign() > 0 && burnOnly(entry.TxKind):
			return fmt.Sprintf("Unexpected burn: Expected %s base tokens to be burned, but none found", intended)
		}
		return ""
	}
	if actual.Cmp(intended) == 0 && !entry.BurnsMintBatons {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Unexpected burn: Burns %s base tokens", actual)
	if entry.BurnsMintBatons {
		b.WriteString(" and mint baton(s)")
	}
	if intended.Sign() > 0 && actual.Cmp(intended) != 0 {
		diff := new(big.Int).Sub(actual, intended)
		direction := "too many"
		if diff.Sign() < 0 {
			direction = "too few"
			diff.Neg(diff)
		}
		fmt.Fprintf(&b, ", but intended to burn %s; burned %s %s", intended, diff, direction)
	}
	return b.String()
}

// burnOnly reports whether the entry exists only because of a burn declaration or
// spent inputs. A missing burn on a minting or sending entry is not reported.
func burnOnly(kind model.TxKind) bool {
	return kind == model.TxKindBurn || kind == model.TxKindNone
}
