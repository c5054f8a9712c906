package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"irepeats/internal/clibase"
	"irepeats/internal/fasta"
	"irepeats/internal/output"
	"irepeats/internal/pattern"
	"irepeats/internal/pipeline"
	"irepeats/internal/source"
	"irepeats/pkg/api"
)

// Error kinds of api.ErrorV1.
const (
	KindBadRequest = "bad_request"
	KindTooLarge   = "payload_too_large"
	KindNotFound   = "not_found"
	KindForbidden  = "forbidden"
	KindInternal   = "internal"
)

// NewPatternsHandler lists the enumerated pattern family for min and max.
func NewPatternsHandler(cfg Config) func(c *gin.Context) {
	return func(c *gin.Context) {
		min, err := intQuery(c, "min", cfg.Scan.MinRepeat)
		if err != nil {
			fail(c, http.StatusBadRequest, KindBadRequest, err)
			return
		}
		max, err := intQuery(c, "max", cfg.Scan.MaxRepeat)
		if err != nil {
			fail(c, http.StatusBadRequest, KindBadRequest, err)
			return
		}
		ps, err := pattern.Enumerate(min, max)
		if err != nil {
			fail(c, http.StatusBadRequest, KindBadRequest, err)
			return
		}
		out := api.PatternListV1{Patterns: make([]string, len(ps))}
		for i, p := range ps {
			out.Patterns[i] = p.String()
		}
		c.JSON(http.StatusOK, out)
	}
}

// NewScanHandler scans the request body, or a Cloud Storage object named by
// source, and responds with one report per pattern.
func NewScanHandler(cfg Config) func(c *gin.Context) {
	return func(c *gin.Context) {
		opts, err := scanOptions(c, cfg.Scan)
		if err != nil {
			fail(c, http.StatusBadRequest, KindBadRequest, err)
			return
		}
		patterns, err := opts.Patterns()
		if err != nil {
			fail(c, http.StatusBadRequest, KindBadRequest, err)
			return
		}

		src, status, kind, err := requestSource(c, cfg)
		if err != nil {
			fail(c, status, kind, err)
			return
		}

		runID := c.GetString(requestIDKey)
		col := output.NewCollector(output.Options{Verbose: opts.Verbose, Exact: opts.Exact(), RunID: runID})
		resp := api.ScanResponseV1{
			RunID:    runID,
			Source:   src.Name(),
			Exact:    opts.Exact(),
			Patterns: []api.PatternReportV1{},
		}

		stream := fasta.NewStream(src, fasta.WithMaxResidues(opts.MaxResidues))
		defer stream.Close()
		err = pipeline.ForEachPattern(c.Request.Context(), pipeline.Config{
			Exact:   opts.Exact(),
			Verbose: opts.Verbose,
		}, stream, patterns, func(ev pipeline.Event) error {
			if r, ok := col.Add(ev); ok {
				resp.Patterns = append(resp.Patterns, r)
			}
			return nil
		})
		if err != nil {
			status, kind := scanStatus(err)
			if len(resp.Patterns) == 0 {
				fail(c, status, kind, err)
				return
			}
			resp.Error = &api.ErrorV1{Error: kind, Message: err.Error()}
			c.AbortWithStatusJSON(status, resp)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func scanStatus(err error) (int, string) {
	switch {
	case errors.Is(err, source.ErrNotFound):
		return http.StatusNotFound, KindNotFound
	case errors.Is(err, source.ErrAccessDenied):
		return http.StatusForbidden, KindForbidden
	default:
		return http.StatusInternalServerError, KindInternal
	}
}

func scanOptions(c *gin.Context, def clibase.Common) (clibase.Common, error) {
	o := def
	o.Pattern = c.DefaultQuery("pattern", def.Pattern)
	var err error
	if o.MinRepeat, err = intQuery(c, "min", def.MinRepeat); err != nil {
		return o, err
	}
	if o.MaxRepeat, err = intQuery(c, "max", def.MaxRepeat); err != nil {
		return o, err
	}
	exact, err := boolQuery(c, "exact", def.Exact())
	if err != nil {
		return o, err
	}
	o.NonExact = !exact
	if o.Verbose, err = boolQuery(c, "verbose", def.Verbose); err != nil {
		return o, err
	}
	return o, clibase.Validate(&o)
}

func requestSource(c *gin.Context, cfg Config) (fasta.Source, int, string, error) {
	if u := c.Query("source"); u != "" {
		if !cfg.AllowGCS {
			return nil, http.StatusBadRequest, KindBadRequest, errors.New("remote sources are disabled")
		}
		bucket, object, err := source.ParseGCSURL(u)
		if err != nil {
			return nil, http.StatusBadRequest, KindBadRequest, err
		}
		client, err := source.NewGCSClient(c.Request.Context(), bearerToken(c), cfg.GCSOptions...)
		if err != nil {
			return nil, http.StatusInternalServerError, KindInternal, err
		}
		return &source.GCSSource{Client: client, Bucket: bucket, Object: object}, 0, "", nil
	}

	body := c.Request.Body
	if cfg.MaxBody > 0 {
		body = http.MaxBytesReader(c.Writer, body, cfg.MaxBody)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, http.StatusRequestEntityTooLarge, KindTooLarge, fmt.Errorf("request body exceeds %d bytes", cfg.MaxBody)
		}
		return nil, http.StatusBadRequest, KindBadRequest, err
	}
	return fasta.NewReaderSource("request", bytes.NewReader(data)), 0, "", nil
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return n, nil
}

func boolQuery(c *gin.Context, key string, def bool) (bool, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q", key, v)
	}
	return b, nil
}

func fail(c *gin.Context, status int, kind string, err error) {
	c.AbortWithStatusJSON(status, api.ErrorV1{Error: kind, Message: err.Error()})
}
