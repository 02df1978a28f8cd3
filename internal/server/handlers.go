package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tonerow/forte/internal/forte"
	"github.com/tonerow/forte/internal/notename"
	"github.com/tonerow/forte/internal/pcset"
)

// setRequest is the common body for single-set operations. Pitches is a
// whitespace-separated collection of note names or raw integers, e.g.
// "C Eb G" or "0 3 7".
type setRequest struct {
	Pitches    string `json:"pitches" binding:"required,pitches"`
	Transposed bool   `json:"transposed"`
}

type pairRequest struct {
	A string `json:"a" binding:"required,pitches"`
	B string `json:"b" binding:"required,pitches"`
}

func (s *Server) bindSet(c *gin.Context) (setRequest, pcset.Set, bool) {
	var req setRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: pitches must be note names or integers"})
		return req, pcset.Set{}, false
	}
	pitches, err := notename.ParseCollection(req.Pitches)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, pcset.Set{}, false
	}
	return req, pcset.New(pitches...), true
}

func maybeTranspose(seq []int, transposed bool) []int {
	if transposed {
		return pcset.TransposeToZero(seq)
	}
	return seq
}

func (s *Server) handleClassify(c *gin.Context) {
	_, set, ok := s.bindSet(c)
	if !ok {
		return
	}
	lab, err := s.catalog.Classify(set)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.metrics.classified(set.Cardinality())
	c.JSON(http.StatusOK, gin.H{
		"label":        lab.String(),
		"cardinality":  lab.Cardinality,
		"index":        lab.Index,
		"orientation":  lab.Orientation.String(),
		"normal_order": set.NormalOrder(),
		"prime_form":   set.PrimeForm(),
	})
}

func (s *Server) handleNormalOrder(c *gin.Context) {
	req, set, ok := s.bindSet(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"normal_order": maybeTranspose(set.NormalOrder(), req.Transposed),
	})
}

func (s *Server) handlePrimeForm(c *gin.Context) {
	_, set, ok := s.bindSet(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"prime_form": set.PrimeForm()})
}

func (s *Server) handleInvert(c *gin.Context) {
	req, set, ok := s.bindSet(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"inversion": maybeTranspose(set.Invert().NormalOrder(), req.Transposed),
	})
}

func (s *Server) handleComplement(c *gin.Context) {
	req, set, ok := s.bindSet(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"complement": maybeTranspose(set.Complement().NormalOrder(), req.Transposed),
	})
}

func (s *Server) handleInterval(c *gin.Context) {
	var req pairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: a and b must be pitch collections"})
		return
	}
	pa, err := notename.ParseCollection(req.A)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pb, err := notename.ParseCollection(req.B)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"interval": pcset.TranspositionInterval(pcset.New(pa...), pcset.New(pb...)),
	})
}

func (s *Server) handleSubsets(c *gin.Context) {
	var req setRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: pitches must be note names or integers"})
		return
	}
	// Subset enumeration draws combinations over the caller's ordering, so
	// hand it the parsed sequence rather than a canonicalized Set.
	pitches, err := notename.ParseCollection(req.Pitches)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	labels := forte.SubsetClasses(s.catalog, pitches)
	classes := make([]string, len(labels))
	for i, lab := range labels {
		classes[i] = lab.String()
	}
	c.JSON(http.StatusOK, gin.H{"classes": classes})
}

func (s *Server) handleCatalog(c *gin.Context) {
	card, err := strconv.Atoi(c.Param("cardinality"))
	if err != nil || card < 0 || card > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cardinality must be an integer 0-12"})
		return
	}
	labels := s.catalog.Classes(card)
	entries := make([]gin.H, len(labels))
	for i, lab := range labels {
		form, _ := s.catalog.PrimeForm(lab)
		entries[i] = gin.H{"label": lab.Class().String(), "prime_form": form}
	}
	c.JSON(http.StatusOK, gin.H{"cardinality": card, "classes": entries})
}
