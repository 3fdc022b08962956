package bankid

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"regexp"
	"strings"
	"sync"

	"ledgerlens/extractcore/internal/logging"
	"ledgerlens/extractcore/internal/models"
	"ledgerlens/extractcore/internal/pdfaccess"
)

// HintConfidenceThreshold is the bar an upstream BankLayout hint must clear
// to bypass the cascade entirely (§6).
const HintConfidenceThreshold = 0.7

// VisionConfidenceThreshold is the confidence reported for a bank found by
// the vision step. Any vision answer that names a known bank is accepted;
// the answer carries no score of its own to compare against this value.
const VisionConfidenceThreshold = 0.6

var keywordPatternCache sync.Map // map[string]*regexp.Regexp

// keywordPattern builds (and caches) a word-boundary-anchored pattern for
// a keyword, preventing collisions such as "OCBC" matching inside a longer
// unrelated token.
func keywordPattern(keyword string) *regexp.Regexp {
	if cached, ok := keywordPatternCache.Load(keyword); ok {
		return cached.(*regexp.Regexp)
	}
	pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
	keywordPatternCache.Store(keyword, pattern)
	return pattern
}

// Identifier runs the three-step cascade of §4.B.
type Identifier struct {
	Vision VisionClient
	Logger logging.Logger
	DPI    int
}

// NewIdentifier builds an Identifier. Vision may be nil, in which case
// step 1 is skipped entirely, matching "skipped when no vision capability
// is wired".
func NewIdentifier(vision VisionClient, logger logging.Logger, dpi int) *Identifier {
	if dpi <= 0 {
		dpi = 150
	}
	return &Identifier{Vision: vision, Logger: logger, DPI: dpi}
}

// Identify runs the cascade against an open document. hint, if it clears
// HintConfidenceThreshold, short-circuits the whole cascade.
func (id *Identifier) Identify(ctx context.Context, doc pdfaccess.Access, hint *models.BankLayout) (models.BankLayout, error) {
	if hint != nil && hint.Confidence > HintConfidenceThreshold {
		id.Logger.WithField("bank", hint.Bank).Debug("bank identification satisfied by upstream hint")
		return *hint, nil
	}

	if result, ok := id.identifyByVision(ctx, doc); ok {
		return result, nil
	}

	text, err := firstPagesText(doc, 3)
	if err != nil {
		return models.BankLayout{Bank: "unknown", Source: models.DetectionUnknown}, err
	}

	if result, ok := identifyByProduct(text); ok {
		return result, nil
	}

	if result, ok := identifyByKeyword(text); ok {
		return result, nil
	}

	id.Logger.Warn("bank identification cascade exhausted, returning unknown")
	return models.BankLayout{Bank: "unknown", Confidence: 0, Source: models.DetectionUnknown}, nil
}

func (id *Identifier) identifyByVision(ctx context.Context, doc pdfaccess.Access) (models.BankLayout, bool) {
	if id.Vision == nil {
		return models.BankLayout{}, false
	}
	image, err := doc.RenderPage(1, id.DPI)
	if err != nil {
		id.Logger.WithError(err).Debug("vision bank identification skipped: page render failed")
		return models.BankLayout{}, false
	}
	image = cropTopFraction(image, 0.2)

	prompt := buildLogoPrompt()
	answer, err := id.Vision.AnalyzeImage(ctx, image, prompt)
	if err != nil {
		id.Logger.WithError(err).Debug("vision bank identification call failed")
		return models.BankLayout{}, false
	}

	bank := matchKnownBank(answer)
	if bank == "" {
		return models.BankLayout{}, false
	}
	return models.BankLayout{Bank: bank, Confidence: VisionConfidenceThreshold, Source: models.DetectionVision}, true
}

func identifyByProduct(text string) (models.BankLayout, bool) {
	upper := strings.ToUpper(text)
	for product, bank := range BankProductIdentifiers {
		if strings.Contains(upper, product) {
			return models.BankLayout{Bank: bank, Confidence: 0.9, Source: models.DetectionProduct}, true
		}
	}
	return models.BankLayout{}, false
}

func identifyByKeyword(text string) (models.BankLayout, bool) {
	for keyword, bank := range BankIdentifiers {
		if keywordPattern(keyword).MatchString(text) {
			return models.BankLayout{Bank: bank, Confidence: 0.7, Source: models.DetectionKeyword}, true
		}
	}
	return models.BankLayout{}, false
}

func matchKnownBank(answer string) string {
	trimmed := strings.TrimSpace(answer)
	for _, bank := range KnownBanks {
		if strings.EqualFold(trimmed, bank) {
			return bank
		}
	}
	return ""
}

func buildLogoPrompt() string {
	return strings.Replace(LogoPromptTemplate, "%s", strings.Join(KnownBanks, ", "), 1)
}

func firstPagesText(doc pdfaccess.Access, n int) (string, error) {
	count, err := doc.PageCount()
	if err != nil {
		return "", err
	}
	if n > count {
		n = count
	}
	var sb strings.Builder
	for page := 1; page <= n; page++ {
		text, err := doc.PageText(page)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// subImager is implemented by every concrete image type png.Decode returns
// (*image.NRGBA, *image.RGBA, *image.Paletted, ...).
type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// cropTopFraction crops the top fraction of a page's height off a
// PNG-encoded raster, per §4.B step 1's "crop the top 20% of page 1"
// before the logo vision call. On any decode/encode failure it falls back
// to submitting the full page, since the vision prompt already asks the
// model to focus on any logo.
func cropTopFraction(pngBytes []byte, fraction float64) []byte {
	img, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return pngBytes
	}

	bounds := img.Bounds()
	cropHeight := int(float64(bounds.Dy()) * fraction)
	if cropHeight <= 0 {
		return pngBytes
	}
	cropRect := image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Min.Y+cropHeight)

	cropper, ok := img.(subImager)
	if !ok {
		return pngBytes
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, cropper.SubImage(cropRect)); err != nil {
		return pngBytes
	}
	return buf.Bytes()
}
