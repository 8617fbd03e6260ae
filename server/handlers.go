// SPDX-License-Identifier: MIT
// Package: server
//
// handlers.go: JSON endpoints over the shared network.

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/katalvlaran/neuron/activation"
)

type analyzeRequest struct {
	Input []float64 `json:"input" binding:"required"`
}

type trainRequest struct {
	Input []float64 `json:"input" binding:"required"`
	Label *int      `json:"label" binding:"required"`
	Rate  *float64  `json:"rate"`
}

// prediction is the reply body of analyze and train.
type prediction struct {
	Class  int       `json:"class"`
	Output []float64 `json:"output"`
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) modelHandler(c *gin.Context) {
	s.mu.Lock()
	sizes := s.net.Sizes()
	act := activation.Name(s.net.Activation())
	s.mu.Unlock()

	params := 0
	for k := 1; k < len(sizes); k++ {
		params += sizes[k]*sizes[k-1] + sizes[k]
	}
	c.JSON(http.StatusOK, gin.H{
		"sizes":      sizes,
		"activation": act,
		"parameters": params,
		"canvas":     []int{s.cfg.rows, s.cfg.cols},
	})
}

func (s *Server) analyzeHandler(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	s.mu.Lock()
	class, out, err := s.net.Classify(req.Input)
	s.mu.Unlock()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, prediction{Class: class, Output: out})
}

// trainHandler runs one online step and answers with the pre-update prediction.
func (s *Server) trainHandler(c *gin.Context) {
	var req trainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	rate := s.cfg.defaultRate
	if req.Rate != nil {
		rate = *req.Rate
	}

	s.mu.Lock()
	class, out, err := s.net.Classify(req.Input)
	if err == nil {
		err = s.net.BackPropagate(*req.Label, rate)
	}
	s.mu.Unlock()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, prediction{Class: class, Output: out})
}

func (s *Server) saveHandler(c *gin.Context) {
	if s.cfg.weightsPath == "" {
		fail(c, ErrNoWeightsPath)
		return
	}
	s.mu.Lock()
	err := s.net.SaveFile(s.cfg.weightsPath)
	s.mu.Unlock()
	if err != nil {
		fail(c, err)
		return
	}
	s.cfg.logger.Info("weights saved", "path", s.cfg.weightsPath, "request_id", c.GetString(ctxRequestID))
	c.JSON(http.StatusOK, gin.H{"path": s.cfg.weightsPath})
}

// loadHandler replaces the network's weights from the configured file. A failed
// load leaves the serving network untouched.
func (s *Server) loadHandler(c *gin.Context) {
	if s.cfg.weightsPath == "" {
		fail(c, ErrNoWeightsPath)
		return
	}
	s.mu.Lock()
	err := s.net.LoadFile(s.cfg.weightsPath)
	sizes := s.net.Sizes()
	s.mu.Unlock()
	if err != nil {
		fail(c, err)
		return
	}
	s.cfg.logger.Info("weights loaded", "path", s.cfg.weightsPath, "sizes", sizes, "request_id", c.GetString(ctxRequestID))
	c.JSON(http.StatusOK, gin.H{"path": s.cfg.weightsPath, "sizes": sizes})
}
