package constants

// Status kehadiran per (student, session). Simpan string apa adanya di DB
// supaya kompatibel dengan data ekspor lama.
const (
	AttendanceStatusOnTime      = "on_time"
	AttendanceStatusLate        = "late"
	AttendanceStatusAbsent      = "absent"
	AttendanceStatusExcused     = "excused"
	AttendanceStatusNotEnrolled = "not_enrolled"
)

var AttendanceStatuses = []string{
	AttendanceStatusOnTime,
	AttendanceStatusLate,
	AttendanceStatusAbsent,
	AttendanceStatusExcused,
	AttendanceStatusNotEnrolled,
}

func IsValidAttendanceStatus(s string) bool {
	for _, v := range AttendanceStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsPresentStatus: hadir secara fisik (on_time atau late).
func IsPresentStatus(s string) bool {
	return s == AttendanceStatusOnTime || s == AttendanceStatusLate
}

// IsEffectiveStatus: hari yang dihitung sebagai kewajiban hadir
// (excused & not_enrolled tidak dihitung).
func IsEffectiveStatus(s string) bool {
	return s != AttendanceStatusExcused && s != AttendanceStatusNotEnrolled
}
