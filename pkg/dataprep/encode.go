package dataprep

// LabelEncode encodes categories as integer codes in order of first appearance.
// The returned slice lists the categories by code.
func LabelEncode(data []string) ([]float64, []string) {
	unique := map[string]int{}
	var classes []string
	out := make([]float64, len(data))
	for i, v := range data {
		code, ok := unique[v]
		if !ok {
			code = len(unique)
			unique[v] = code
			classes = append(classes, v)
		}
		out[i] = float64(code)
	}
	return out, classes
}
