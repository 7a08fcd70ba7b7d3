package rawinspect

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
)

var banner = strings.Repeat("=", 80)

// Inspector prints the columns, a sample and the row count of each dataset.
type Inspector struct {
	// BaseDir is the directory holding the datasets. Defaults to BaseDir.
	BaseDir string
	// Out receives the report. Defaults to os.Stdout.
	Out io.Writer
	// Logger receives diagnostics. Defaults to a discarding logger.
	Logger *slog.Logger
}

// Run inspects every dataset in order. A dataset that is missing or fails to
// load is reported in the output and does not stop the run. The only error
// returned is a failed write to Out, which aborts the run.
func (in *Inspector) Run() error {
	p := &printer{w: in.out()}
	for _, ds := range Datasets {
		in.inspect(p, ds)
		if p.err != nil {
			return p.err
		}
	}
	return nil
}

func (in *Inspector) inspect(p *printer, ds Dataset) {
	logger := in.logger()
	path := ds.Path(in.baseDir())

	info, err := os.Stat(path)
	if err != nil {
		logger.Debug("dataset not found", "path", path, "error", err)
		p.printf("\n파일을 찾을 수 없습니다: %s\n", path)
		return
	}
	logger.Debug("inspecting dataset", "path", path, "size", humanize.Bytes(uint64(info.Size())))

	p.printf("\n%s\n", banner)
	p.printf("파일: %s\n", ds)
	p.printf("%s\n", banner)
	if p.err != nil {
		return
	}

	if err := in.report(p, path); err != nil {
		logger.Warn("dataset load failed", "path", path, "error", err)
		p.printf("오류 발생: %v\n", err)
	}
}

// report prints the column list, the sample and the row count of one
// workbook. Panics raised while reading are returned as a LoadError.
func (in *Inspector) report(p *printer, path string) (err error) {
	stage := StagePreview
	defer func() {
		if r := recover(); r != nil {
			err = NewLoadError(path, stage, fmt.Errorf("panic: %v", r))
		}
	}()

	preview, err := LoadPreview(path)
	if err != nil {
		return err
	}

	p.printf("\n컬럼 목록 (%d개):\n", len(preview.Columns))
	for i, name := range preview.Columns {
		p.printf("  %d. %s\n", i+1, name)
	}

	stage = StageRender
	p.printf("\n데이터 샘플 (첫 %d행):\n", SampleRows)
	p.printf("%s\n", renderSample(preview.Head(SampleRows)))

	stage = StageFull
	total, err := CountRows(path)
	if err != nil {
		return err
	}
	p.printf("\n전체 행 수: %d\n", total)
	return nil
}

func (in *Inspector) baseDir() string {
	if in.BaseDir == "" {
		return BaseDir
	}
	return in.BaseDir
}

func (in *Inspector) out() io.Writer {
	if in.Out == nil {
		return os.Stdout
	}
	return in.Out
}

func (in *Inspector) logger() *slog.Logger {
	if in.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return in.Logger
}

// printer remembers the first write error and skips writes after it.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
