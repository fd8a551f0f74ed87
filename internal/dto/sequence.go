package dto

// NextSequenceRequest asks for one code in a (category, year) scope.
type NextSequenceRequest struct {
	Category string `json:"category" binding:"required,max=10"`
	Year     int    `json:"year" binding:"required,min=1000,max=9999"`
}

// NextSequenceResponse carries the issued code.
type NextSequenceResponse struct {
	Code string `json:"code"`
}
