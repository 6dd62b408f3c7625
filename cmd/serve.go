package cmd

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/stardex/constants"
	"github.com/jsphweid/stardex/keymap"
	"github.com/jsphweid/stardex/logger"
	"github.com/jsphweid/stardex/model"
	"github.com/jsphweid/stardex/official"
	"github.com/jsphweid/stardex/strain"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var servePort string

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (defaults to PORT or 8080)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the rating API",
	Long:  `Serves POST /rate, POST /official and GET /keys over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port := servePort
		if port == "" {
			port = constants.GetPort()
		}
		logger.Infof(logger.WithValue(context.Background(), "port", port), "serving")
		return http.ListenAndServe(":"+port, NewRouter())
	},
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/rate", HandleRate).Methods(http.MethodPost)
	router.HandleFunc("/official", HandleOfficial).Methods(http.MethodPost)
	router.HandleFunc("/keys", HandleKeys).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: constants.GetCorsOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
	return logger.Middleware(c.Handler(router))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func decodeRateRequest(w http.ResponseWriter, r *http.Request) (model.RateRequestBody, bool) {
	var input model.RateRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "could not decode request body: " + err.Error()})
		return input, false
	}
	return input, true
}

func overallDifficulty(input model.RateRequestBody) float64 {
	if input.OverallDifficulty == nil {
		return constants.DefaultOverallDifficulty
	}
	return *input.OverallDifficulty
}

func HandleRate(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeRateRequest(w, r)
	if !ok {
		return
	}

	od := overallDifficulty(input)
	res := strain.CalculateWithOptions(input.Notes, strain.Options{
		OverallDifficulty: od,
		Rate:              input.Rate,
		ReturnPeaks:       input.Peaks,
	})
	writeJSON(w, http.StatusOK, model.RateResponse{
		RequestID:     uuid.NewString(),
		Stars:         res.Total,
		StarsOfficial: official.Calculate(official.Input{Notes: input.Notes, OverallDifficulty: od}),
		Result:        res,
	})
}

func HandleOfficial(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeRateRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, model.OfficialResponse{
		RequestID:     uuid.NewString(),
		StarsOfficial: official.Calculate(official.Input{Notes: input.Notes, OverallDifficulty: overallDifficulty(input)}),
	})
}

func HandleKeys(w http.ResponseWriter, r *http.Request) {
	res := make([]model.KeyInfo, 0, 30)
	for _, key := range keymap.Keys() {
		k, _ := keymap.Lookup(key)
		f := keymap.FingerInfo(k.Finger)
		res = append(res, model.KeyInfo{
			Key:      key,
			Finger:   k.Finger,
			Hand:     f.Hand.String(),
			Row:      k.Row,
			Offset:   k.Offset,
			Strength: f.Strength,
		})
	}
	writeJSON(w, http.StatusOK, res)
}
