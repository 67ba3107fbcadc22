package doctor

import (
	"errors"
	"fmt"
	"io"
)

// ErrCheckFailed는 FAIL 상태의 진단이 하나 이상 있을 때의 sentinel error다.
var ErrCheckFailed = errors.New("진단 실패")

// Print는 진단 결과 목록을 w에 출력한다.
func Print(w io.Writer, results []DiagResult) {
	for _, r := range results {
		fmt.Fprintf(w, "  [%s] %s: %s\n", statusIcon(r.Status), r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(w, "      Fix: %s\n", r.Fix)
		}
	}
}

// Failed는 결과 중 FAIL이 있는지 반환한다.
func Failed(results []DiagResult) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}

func statusIcon(s Status) string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarn:
		return "!!"
	case StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
