// Package accounts resolves account codes entered on a voucher to the
// statement line they post to.
package accounts

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
)

var (
	ErrInvalidCode = errors.New("account code must be six digits")
	ErrUnknownSide = errors.New("side must be debit or credit")
)

var codePattern = regexp.MustCompile(`^\d{6}$`)

// Kind classifies an account code
type Kind int

const (
	KindOther         Kind = iota // balance sheet accounts, passed through
	KindIncomeExpense             // cash-basis activity accounts
	KindPL                        // activity statement lines
	KindNetAssets
)

func (k Kind) String() string {
	switch k {
	case KindIncomeExpense:
		return "IncomeExpense"
	case KindPL:
		return "PL"
	case KindNetAssets:
		return "NetAssets"
	default:
		return "Other"
	}
}

// Side is the voucher column a code was entered in
type Side int

const (
	Debit Side = iota
	Credit
)

func (s Side) String() string {
	if s == Credit {
		return "credit"
	}
	return "debit"
}

// ParseSide converts "debit" or "credit"
func ParseSide(s string) (Side, error) {
	switch s {
	case "", "debit":
		return Debit, nil
	case "credit":
		return Credit, nil
	default:
		return Debit, fmt.Errorf("%w: %q", ErrUnknownSide, s)
	}
}

// Funding says whether the money is restricted by the donor
type Funding int

const (
	General Funding = iota
	Designated
)

func (f Funding) String() string {
	if f == Designated {
		return "designated"
	}
	return "general"
}

// ParseFunding converts "general" or "designated"
func ParseFunding(s string) (Funding, error) {
	switch s {
	case "", "general":
		return General, nil
	case "designated":
		return Designated, nil
	default:
		return General, fmt.Errorf("unknown funding %q", s)
	}
}

// Account is one row of the chart of accounts
type Account struct {
	Code   string
	Name   string
	Parent string
	Kind   Kind
	PL     string // activity accounts only: the statement line it posts to
}

// Mapping is where an entered code ends up on the statements
type Mapping struct {
	Code       string
	ParentName string
	ChildName  string
	Kind       Kind
}

// Options carry the voucher context a resolution depends on
type Options struct {
	Side    Side
	Funding Funding
}

const (
	valuationBase       = "108100"
	valuationDesignated = "109100"
	valuationGeneral    = "109200"
)

var chart = []Account{
	{Code: "111100", Name: "現金", Parent: "流動資産", Kind: KindOther},
	{Code: "111200", Name: "普通預金", Parent: "流動資産", Kind: KindOther},
	{Code: "121100", Name: "投資有価証券", Parent: "固定資産", Kind: KindOther},
	{Code: "211100", Name: "未払金", Parent: "流動負債", Kind: KindOther},
	{Code: "211200", Name: "預り金", Parent: "流動負債", Kind: KindOther},

	{Code: "108100", Name: "その他有価証券評価差額金", Parent: "純資産", Kind: KindNetAssets},
	{Code: "109100", Name: "（うち指定純資産に係る評価差額金）", Parent: "その他有価証券評価差額金", Kind: KindNetAssets},
	{Code: "109200", Name: "（うち一般純資産に係る評価差額金）", Parent: "その他有価証券評価差額金", Kind: KindNetAssets},

	{Code: "410100", Name: "受取会費", Parent: "経常収益", Kind: KindPL},
	{Code: "420100", Name: "受取寄付金", Parent: "経常収益", Kind: KindPL},
	{Code: "430100", Name: "受取補助金等", Parent: "経常収益", Kind: KindPL},
	{Code: "440100", Name: "受取利息", Kind: KindPL},
	{Code: "510100", Name: "給料手当", Parent: "経常費用", Kind: KindPL},
	{Code: "520100", Name: "事業費", Parent: "経常費用", Kind: KindPL},
	{Code: "530100", Name: "管理費", Parent: "経常費用", Kind: KindPL},
	{Code: "550100", Name: "雑損失", Kind: KindPL},

	{Code: "610100", Name: "会費収入", Parent: "収入", Kind: KindIncomeExpense, PL: "410100"},
	{Code: "620100", Name: "寄付金収入", Parent: "収入", Kind: KindIncomeExpense, PL: "420100"},
	{Code: "630100", Name: "補助金等収入", Parent: "収入", Kind: KindIncomeExpense, PL: "430100"},
	{Code: "690100", Name: "雑収入", Parent: "収入", Kind: KindIncomeExpense},
	{Code: "740100", Name: "投資有価証券評価益", Parent: "収入", Kind: KindIncomeExpense},
	{Code: "810100", Name: "人件費支出", Parent: "支出", Kind: KindIncomeExpense, PL: "510100"},
	{Code: "820100", Name: "事業費支出", Parent: "支出", Kind: KindIncomeExpense, PL: "520100"},
	{Code: "830100", Name: "管理費支出", Parent: "支出", Kind: KindIncomeExpense, PL: "530100"},
	{Code: "890100", Name: "雑支出", Parent: "支出", Kind: KindIncomeExpense},
	{Code: "960100", Name: "投資有価証券評価損", Parent: "支出", Kind: KindIncomeExpense},
}

var byCode = func() map[string]Account {
	m := make(map[string]Account, len(chart))
	for _, a := range chart {
		m[a.Code] = a
	}
	return m
}()

// Lookup returns the chart entry for code
func Lookup(code string) (Account, bool) {
	a, ok := byCode[code]
	return a, ok
}

// All returns the chart of accounts sorted by code
func All() []Account {
	out := append([]Account(nil), chart...)
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Classify returns the kind of a code. Codes missing from the chart are
// KindOther.
func Classify(code string) Kind {
	return byCode[code].Kind
}

// Resolve maps an entered code to its statement line. Activity codes move
// to their activity statement counterpart, valuation gains and losses
// branch into net assets by funding, and everything else passes through.
func Resolve(code string, opts Options) (Kind, Mapping, error) {
	if !codePattern.MatchString(code) {
		return KindOther, Mapping{}, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}

	kind := Classify(code)
	switch kind {
	case KindIncomeExpense:
		return kind, mapActivity(code, opts), nil
	case KindPL:
		return kind, mapPL(code, opts.Side), nil
	default:
		a := byCode[code]
		return kind, Mapping{Code: code, ParentName: a.Parent, ChildName: a.Name, Kind: kind}, nil
	}
}

// IsValuationCode reports whether code is a securities valuation gain or
// loss, whose target depends on funding
func IsValuationCode(code string) bool {
	return code == "740100" || code == "960100"
}

// ValuationTarget picks the net assets line a valuation difference lands
// on, branching from base by funding
func ValuationTarget(base string, funding Funding) string {
	if base != valuationBase {
		return base
	}
	if funding == Designated {
		return valuationDesignated
	}
	return valuationGeneral
}

func mapActivity(code string, opts Options) Mapping {
	if IsValuationCode(code) {
		target := ValuationTarget(valuationBase, opts.Funding)
		a := byCode[target]
		return Mapping{Code: target, ParentName: a.Parent, ChildName: a.Name, Kind: KindPL}
	}

	if pl, ok := byCode[byCode[code].PL]; ok {
		return Mapping{Code: pl.Code, ParentName: pl.Parent, ChildName: pl.Name, Kind: KindPL}
	}

	parent := "費用（仮）"
	if opts.Side == Credit {
		parent = "収益（仮）"
	}
	return Mapping{Code: code, ParentName: parent, ChildName: "（紐付未設定）", Kind: KindPL}
}

func mapPL(code string, side Side) Mapping {
	a := byCode[code]
	parent := a.Parent
	if parent == "" {
		switch {
		case code[0] == '4':
			parent = "収益（PL）"
		case code[0] == '5':
			parent = "費用（PL）"
		case side == Credit:
			parent = "収益（PL）"
		default:
			parent = "費用（PL）"
		}
	}
	return Mapping{Code: code, ParentName: parent, ChildName: a.Name, Kind: KindPL}
}
