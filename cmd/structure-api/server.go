/*
 * Copyright 2022 Medicines Discovery Catapult
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib"
)

const contentTypeHTML = "text/html"

type HttpError struct {
	code int
	error
}

func (e HttpError) Error() string {
	return e.error.Error()
}

func NewHttpError(code int, err error) HttpError {
	return HttpError{
		code:  code,
		error: err,
	}
}

type textRequest struct {
	Text *string `json:"text"`
}

type server struct {
	controller controller
	metrics    http.Handler
}

func (s server) RegisterRoutes(r *gin.Engine) {
	r.POST("/analyze_structure", validateBody, s.AnalyzeStructure)
	r.POST("/analyze_paragraph", validateBody, s.AnalyzeParagraph)
	r.GET("/healthz", s.Health)
	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics))
	}
}

func (s server) AnalyzeStructure(c *gin.Context) {
	text, err := bindText(c)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":     true,
		"result": s.controller.Analyze(text),
	})
}

func (s server) AnalyzeParagraph(c *gin.Context) {
	if c.ContentType() == contentTypeHTML {
		paragraph, err := s.controller.AnalyzeHTML(c.Request.Body)
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"ok":        true,
			"sentences": paragraph.Sentences,
			"full":      paragraph.Full,
		})
		return
	}

	text, err := bindText(c)
	if err != nil {
		handleError(c, err)
		return
	}

	paragraph := s.controller.AnalyzeParagraph(text)
	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"sentences": paragraph.Sentences,
		"full":      paragraph.Full,
	})
}

func (s server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"extractor": s.controller.Extractor(),
	})
}

func bindText(c *gin.Context) (string, error) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", NewHttpError(http.StatusBadRequest, errors.New("invalid request body - must be json with a text field"))
	}
	if req.Text == nil {
		return "", NewHttpError(http.StatusBadRequest, errors.New("text is required"))
	}
	return *req.Text, nil
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	conf := cors.DefaultConfig()
	conf.AllowHeaders = append(conf.AllowHeaders, lib.RequestIdHeader)
	conf.ExposeHeaders = []string{lib.RequestIdHeader}
	allowAll := len(origins) == 0
	for _, origin := range origins {
		if origin == "*" {
			allowAll = true
		}
	}
	if allowAll {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = origins
	}
	return cors.New(conf)
}

func validateBody(c *gin.Context) {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		handleError(c, NewHttpError(http.StatusBadRequest, errors.New("request body missing")))
	} else if _, err := c.Request.Body.Read(nil); err == io.EOF {
		handleError(c, NewHttpError(http.StatusBadRequest, errors.New("request body missing")))
	} else {
		c.Next()
	}
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		abort(c, http.StatusInternalServerError, errors.New("abort called on nil error"))
		return
	}
	var httpErr HttpError
	if errors.As(err, &httpErr) {
		abort(c, httpErr.code, httpErr.error)
		return
	}
	abort(c, http.StatusInternalServerError, err)
}

func abort(c *gin.Context, code int, err error) {
	switch {
	case code <= 500:
		c.JSON(code, map[string]interface{}{
			"status":  code,
			"message": err.Error(),
		})
		c.Abort()
	default:
		_ = c.AbortWithError(code, err)
	}
}
