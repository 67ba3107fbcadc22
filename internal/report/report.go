// Package report writes user-facing diagnostics to the error stream. stdout
// is reserved for the shell command that the calling shell evaluates, so
// every notice, success message and error goes through a Reporter bound to
// stderr.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// DefaultBanner는 첫 메시지 앞에 한 번 출력되는 머리말이다.
const DefaultBanner = "[pyactivate]:"

// Reporter는 진단 메시지를 출력한다.
// 머리말 출력 여부를 인스턴스 상태로 가지므로 호출마다 하나씩 생성해 공유한다.
type Reporter struct {
	w       io.Writer
	banner  string
	printed bool

	info    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

// New는 w에 쓰는 Reporter를 생성한다. banner가 비어있으면 머리말을 생략한다.
// NO_COLOR가 설정되어 있거나 w가 터미널이 아니면 색을 쓰지 않는다.
func New(w io.Writer, banner string) *Reporter {
	renderer := lipgloss.NewRenderer(w)
	if os.Getenv("NO_COLOR") != "" {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return &Reporter{
		w:       w,
		banner:  banner,
		info:    renderer.NewStyle().Foreground(lipgloss.Color("8")).Bold(true),
		success: renderer.NewStyle().Foreground(lipgloss.Color("2")),
		failure: renderer.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Info는 안내 메시지를 출력한다.
func (r *Reporter) Info(format string, args ...any) {
	r.print(r.info, format, args...)
}

// Success는 성공 메시지를 출력한다.
func (r *Reporter) Success(format string, args ...any) {
	r.print(r.success, format, args...)
}

// Error는 에러 메시지를 출력한다.
func (r *Reporter) Error(format string, args ...any) {
	r.print(r.failure, format, args...)
}

// BannerPrinted는 머리말이 이미 출력되었는지 반환한다.
func (r *Reporter) BannerPrinted() bool {
	return r.printed
}

func (r *Reporter) print(style lipgloss.Style, format string, args ...any) {
	if !r.printed && r.banner != "" {
		fmt.Fprintln(r.w, r.info.Render(r.banner))
	}
	r.printed = true
	fmt.Fprintln(r.w, style.Render("---> "+fmt.Sprintf(format, args...)))
}
