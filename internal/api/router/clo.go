package router

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/clo-analytics/internal/apperr"
	"github.com/DjordjeVuckovic/clo-analytics/internal/pipeline"
	"github.com/DjordjeVuckovic/clo-analytics/internal/storage/upload"
	"github.com/labstack/echo/v4"
)

const formFileField = "file"

// SourceFetcher downloads a grades file by name from a remote source.
type SourceFetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

type RemoteRequest struct {
	Source string `json:"source" example:"misy2313/fall.csv"`
}

type CLORouterOption func(*CLORouter)

func WithSourceFetcher(f SourceFetcher) CLORouterOption {
	return func(r *CLORouter) {
		r.fetcher = f
	}
}

type CLORouter struct {
	e       *echo.Echo
	service *pipeline.Service
	stager  *upload.Stager
	fetcher SourceFetcher
}

func NewCLORouter(e *echo.Echo, service *pipeline.Service, stager *upload.Stager, opts ...CLORouterOption) *CLORouter {
	r := &CLORouter{
		e:       e,
		service: service,
		stager:  stager,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *CLORouter) Bind() {
	r.e.POST("/process_clo", r.processCLOHandler)

	v1 := r.e.Group("/api/v1/courses/:code")
	v1.GET("/config", r.configHandler)
	v1.POST("/clo", r.reportHandler)
	if r.fetcher != nil {
		v1.POST("/clo/remote", r.remoteReportHandler)
	}
}

// processCLOHandler godoc
// @Summary Compute CLO achievement
// @Description Computes per-CLO achievement for an uploaded grades file. Returns one flat record per CLO.
// @Tags clo
// @Accept multipart/form-data
// @Produce json
// @Param course_code query string true "Course code"
// @Param file formData file true "Grades CSV"
// @Success 200 {array} object
// @Failure 400 {object} apperr.ErrorBody
// @Failure 404 {object} apperr.ErrorBody
// @Failure 422 {object} apperr.ErrorBody
// @Router /process_clo [post]
func (r *CLORouter) processCLOHandler(c echo.Context) error {
	code := strings.TrimSpace(c.QueryParam("course_code"))
	if code == "" {
		return apperr.NewValidation("course_code query parameter is required")
	}

	report, err := r.runUpload(c, code)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report.Results)
}

// reportHandler godoc
// @Summary Compute CLO report
// @Description Computes the full CLO report for a grades file sent as multipart upload or as a raw text/csv body.
// @Tags clo
// @Accept multipart/form-data,text/csv
// @Produce json
// @Param code path string true "Course code"
// @Param file formData file false "Grades CSV"
// @Success 200 {object} pipeline.Report
// @Failure 400 {object} apperr.ErrorBody
// @Failure 404 {object} apperr.ErrorBody
// @Failure 413 {object} apperr.ErrorBody
// @Failure 422 {object} apperr.ErrorBody
// @Router /api/v1/courses/{code}/clo [post]
func (r *CLORouter) reportHandler(c echo.Context) error {
	code := c.Param("code")

	var (
		report *pipeline.Report
		err    error
	)
	if isMultipart(c.Request()) {
		report, err = r.runUpload(c, code)
	} else {
		report, err = r.runStaged(c.Request().Context(), c.Request().Body, "body.csv", code)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// remoteReportHandler godoc
// @Summary Compute CLO report from a remote grades file
// @Tags clo
// @Accept json
// @Produce json
// @Param code path string true "Course code"
// @Param request body RemoteRequest true "Remote source"
// @Success 200 {object} pipeline.Report
// @Failure 400 {object} apperr.ErrorBody
// @Failure 404 {object} apperr.ErrorBody
// @Failure 422 {object} apperr.ErrorBody
// @Failure 502 {object} apperr.ErrorBody
// @Router /api/v1/courses/{code}/clo/remote [post]
func (r *CLORouter) remoteReportHandler(c echo.Context) error {
	code := c.Param("code")

	var req RemoteRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	ctx := c.Request().Context()
	// an unknown course fails before anything is downloaded
	if _, err := r.service.LoadConfig(ctx, code); err != nil {
		return err
	}

	body, err := r.fetcher.Fetch(ctx, req.Source)
	if err != nil {
		return err
	}
	slog.Debug("Remote grades fetched", "course", code, "source", req.Source, "bytes", len(body))

	report, err := r.service.RunCSV(ctx, bytes.NewReader(body), code)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// configHandler godoc
// @Summary Get course configuration
// @Tags courses
// @Produce json
// @Param code path string true "Course code"
// @Success 200 {object} domain.CourseConfig
// @Failure 404 {object} apperr.ErrorBody
// @Failure 422 {object} apperr.ErrorBody
// @Router /api/v1/courses/{code}/config [get]
func (r *CLORouter) configHandler(c echo.Context) error {
	cfg, err := r.service.LoadConfig(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cfg)
}

func (r *CLORouter) runUpload(c echo.Context, code string) (*pipeline.Report, error) {
	fh, err := c.FormFile(formFileField)
	if err != nil {
		return nil, apperr.NewValidationWrap("multipart field 'file' is required", err)
	}
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return r.runStaged(c.Request().Context(), src, fh.Filename, code)
}

func (r *CLORouter) runStaged(ctx context.Context, src io.Reader, filename, code string) (*pipeline.Report, error) {
	staged, cleanup, err := r.stager.Stage(src, filename)
	defer cleanup()
	if err != nil {
		if errors.Is(err, upload.ErrTooLarge) {
			return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "grades file exceeds upload limit")
		}
		return nil, err
	}

	f, err := os.Open(staged.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return r.service.RunCSV(ctx, f, code)
}

func isMultipart(req *http.Request) bool {
	return strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}
