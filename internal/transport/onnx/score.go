package onnx

// normalizeLogit maps a raw cross-encoder logit into [0,1]. Relevance
// logits land in roughly [-10,10]; the map is linear with clamping so
// ordering is preserved.
func normalizeLogit(logit float32) float64 {
	s := (float64(logit) + 10.0) / 20.0
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
