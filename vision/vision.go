package vision

// Provider detects labels on a stored image. Implementations analyze the
// object in place; photo bytes are never passed through this interface.
type Provider interface {
	// DetectLabels returns label name -> confidence (0-100) for the stored
	// object, limited to maxLabels entries at or above minConfidence.
	DetectLabels(storageKey string, maxLabels int64, minConfidence float64) (map[string]float64, error)
}

// Disabled is used when no analysis backend is configured. Uploads proceed
// with no labels.
type Disabled struct{}

func (Disabled) DetectLabels(storageKey string, maxLabels int64, minConfidence float64) (map[string]float64, error) {
	return map[string]float64{}, nil
}
