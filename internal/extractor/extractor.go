// Package extractor splits raw bank-statement text into per-transaction
// blocks and extracts normalized date, amount, recipient, and description
// fields from each block. Bank formats are data, not code: each supported
// bank contributes a block-boundary signature and field patterns, while the
// splitting and extraction algorithm stays fixed.
package extractor

import (
	"regexp"
	"strings"
	"time"

	"mwirth/statement-csv/internal/amountutils"
	"mwirth/statement-csv/internal/dateutils"
	"mwirth/statement-csv/internal/logging"
	"mwirth/statement-csv/internal/models"
)

// minBlockLength guards against headers, footers, and empty trailing
// fragments; shorter blocks are discarded before field extraction.
const minBlockLength = 20

var log = logging.GetLogger()

// SetLogger allows setting a configured logger for the package-level
// extraction functions.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Extractor turns raw statement text into normalized transactions.
type Extractor struct {
	logger logging.Logger
	now    func() time.Time
}

// New creates an Extractor. A nil logger falls back to the package default.
func New(logger logging.Logger) *Extractor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Extractor{
		logger: logger,
		now:    time.Now,
	}
}

// NewWithClock creates an Extractor whose unparseable-date fallback uses
// the given clock instead of time.Now.
func NewWithClock(logger logging.Logger, now func() time.Time) *Extractor {
	e := New(logger)
	if now != nil {
		e.now = now
	}
	return e
}

// ExtractTransactions extracts transactions from raw statement text using
// the named bank format and a default extractor. It never fails; text that
// yields no parseable blocks produces an empty result.
func ExtractTransactions(rawText, formatName string) []models.Transaction {
	e := &Extractor{logger: log, now: time.Now}
	return e.Extract(rawText, formatName)
}

// Extract splits rawText into transaction blocks per the named format and
// extracts one normalized transaction per complete block. Blocks missing a
// recipient, date, or amount are silently dropped.
func (e *Extractor) Extract(rawText, formatName string) []models.Transaction {
	format, ok := Lookup(formatName)
	if !ok {
		e.logger.Warn("Unknown bank format, using default",
			logging.Field{Key: "format", Value: formatName},
			logging.Field{Key: "default", Value: DefaultFormatName})
		format, _ = Lookup(DefaultFormatName)
	}

	blocks := splitBlocks(rawText, format)

	transactions := make([]models.Transaction, 0, len(blocks))
	for _, block := range blocks {
		if tx, ok := e.extractFromBlock(block, format); ok {
			transactions = append(transactions, tx)
		}
	}

	e.logger.Info("Extracted transactions from statement text",
		logging.Field{Key: "format", Value: format.Name},
		logging.Field{Key: "blocks", Value: len(blocks)},
		logging.Field{Key: "transactions", Value: len(transactions)})

	return transactions
}

// splitBlocks splits the full text on the format's boundary signature,
// keeping the signature at the start of each block. This is a look-ahead
// split: the boundary marks where a block begins and is not consumed.
func splitBlocks(text string, format Format) []string {
	starts := format.Boundary.FindAllStringIndex(text, -1)
	if starts == nil {
		return nil
	}

	blocks := make([]string, 0, len(starts))
	for i, loc := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		block := strings.TrimSpace(text[loc[0]:end])
		if len(block) < minBlockLength {
			continue
		}
		blocks = append(blocks, block)
	}
	return blocks
}

// extractFromBlock pulls the leading date token and the trailing amount
// token out of a block, then reads recipient and purpose from the
// remaining lines. The fixed bank layout puts the transaction-type line
// first, the recipient second, and the purpose third; the positional
// fallbacks cover blocks with fewer lines.
func (e *Extractor) extractFromBlock(block string, format Format) (models.Transaction, bool) {
	dateToken := format.DatePattern.FindString(block)

	amountToken, remainder := cutLastMatch(format.AmountPattern, block)
	if dateToken != "" {
		remainder = strings.Replace(remainder, dateToken, "", 1)
	}

	lines := nonEmptyLines(remainder)

	recipient := ""
	if len(lines) >= 2 {
		recipient = lines[1]
	} else if len(lines) == 1 {
		recipient = lines[0]
	}
	recipient = stripRecipientPrefix(recipient, format.RecipientPrefixes)

	description := ""
	if len(lines) >= 3 {
		description = lines[2]
	} else if len(lines) == 2 {
		description = lines[1]
	}

	if recipient == "" || dateToken == "" || amountToken == "" {
		e.logger.Debug("Dropping incomplete transaction block",
			logging.Field{Key: "format", Value: format.Name},
			logging.Field{Key: "block_length", Value: len(block)})
		return models.Transaction{}, false
	}

	return models.Transaction{
		Date:          dateutils.NormalizeDateAt(dateToken, e.now()),
		Amount:        amountutils.NormalizeAmount(amountToken),
		Description:   description,
		Recipient:     recipient,
		SourceAccount: format.Name,
	}, true
}

// cutLastMatch returns the last occurrence of pattern in text and the
// text with exactly that occurrence removed. The amount token is
// anchored near the block's end, so earlier amount-shaped strings in
// the purpose text must neither win nor be removed in its place.
func cutLastMatch(pattern *regexp.Regexp, text string) (string, string) {
	locs := pattern.FindAllStringIndex(text, -1)
	if locs == nil {
		return "", text
	}
	last := locs[len(locs)-1]
	return text[last[0]:last[1]], text[:last[0]] + text[last[1]:]
}

// nonEmptyLines splits text into trimmed, non-empty lines. A residual
// currency marker left over from amount removal is dropped as well.
func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == "EUR" || line == "€" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// stripRecipientPrefix removes a bank's direction word ("Von ", "An ")
// from the start of a recipient line.
func stripRecipientPrefix(recipient string, prefixes []string) string {
	for _, prefix := range prefixes {
		if strings.HasPrefix(recipient, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(recipient, prefix))
		}
	}
	return recipient
}
