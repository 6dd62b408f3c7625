package model

type RateRequestBody struct {
	Notes             []Note   `json:"notes"`
	OverallDifficulty *float64 `json:"overallDifficulty,omitempty"`
	Rate              float64  `json:"rate,omitempty"`
	Peaks             bool     `json:"peaks,omitempty"`
}

type RateResponse struct {
	RequestID     string       `json:"requestId"`
	Stars         float64      `json:"stars"`
	StarsOfficial float64      `json:"starsOfficial"`
	Result        StrainResult `json:"result"`
}

type OfficialResponse struct {
	RequestID     string  `json:"requestId"`
	StarsOfficial float64 `json:"starsOfficial"`
}

type KeyInfo struct {
	Key      string  `json:"key"`
	Finger   int     `json:"finger"`
	Hand     string  `json:"hand"`
	Row      int     `json:"row"`
	Offset   float64 `json:"offset"`
	Strength float64 `json:"strength"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
