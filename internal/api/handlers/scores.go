package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/brickbreaker/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// ScoreReader is the read side of the score store.
type ScoreReader interface {
	TopScores(limit int) ([]storage.ScoreEntry, error)
	HighScore() (int, error)
	GetStats() (*storage.Stats, error)
}

// GetTopScores returns the best runs, highest first
func GetTopScores(store ScoreReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := defaultLimit
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
				return
			}
			limit = min(n, maxLimit)
		}

		scores, err := store.TopScores(limit)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load scores"})
			return
		}
		if scores == nil {
			scores = []storage.ScoreEntry{}
		}

		c.JSON(http.StatusOK, gin.H{
			"scores": scores,
			"count":  len(scores),
		})
	}
}

// GetBestScore returns the single highest score
func GetBestScore(store ScoreReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		best, err := store.HighScore()
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load best score"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"score": best})
	}
}

// GetStats returns aggregate statistics over all saved runs
func GetStats(store ScoreReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := store.GetStats()
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
