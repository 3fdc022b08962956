package bankid

import "context"

// VisionClient is the minimal external collaborator §6 names for the
// vision model: analyze an image with a prompt and get back the model's
// text answer. Tier-3's OCR path (§4.E step 1) uses the same interface.
type VisionClient interface {
	AnalyzeImage(ctx context.Context, imageBytes []byte, prompt string) (string, error)
}

// LogoPromptTemplate constrains the vision model's answer to the closed
// bank set, so its response can be matched directly against KnownBanks.
const LogoPromptTemplate = "Identify the bank that issued this statement. " +
	"Answer with exactly one of the following names and nothing else: %s"
