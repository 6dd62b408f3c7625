package model

// Chart is one difficulty of a song, as handed to the engine by importers.
type Chart struct {
	ID                string  `json:"id"`
	Title             string  `json:"title,omitempty"`
	Artist            string  `json:"artist,omitempty"`
	Source            string  `json:"source,omitempty"`
	OverallDifficulty float64 `json:"overallDifficulty"`
	Notes             []Note  `json:"notes"`
}

// ChartRating is one entry of the dashboard artifact.
type ChartRating struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Artist        string  `json:"artist,omitempty"`
	Stars         float64 `json:"stars"`
	StarsOfficial float64 `json:"starsOfficial"`
	Stats         Details `json:"stats"`
	DrainTime     float64 `json:"drainTime"`
	NoteCount     int     `json:"noteCount"`
}

type ChartMetadata struct {
	Title  string
	Artist string
}
