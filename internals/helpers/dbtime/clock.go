// file: internals/helpers/dbtime/clock.go
package dbtime

import (
	"log"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Zona waktu sekolah. Hari-dalam-minggu pada jadwal dan stempel jam
// check-in selalu dihitung di zona ini, bukan zona default server.
var appLoc = mustLoad("Asia/Jakarta")

// Init set zona waktu aplikasi dari env (dipanggil sekali di main).
func Init(tzName string) {
	tzName = strings.TrimSpace(tzName)
	if tzName == "" {
		return
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Printf("⚠️ APP_TIMEZONE %q tidak dikenal, tetap pakai %s", tzName, appLoc)
		return
	}
	appLoc = loc
}

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Location: zona waktu aplikasi aktif.
func Location() *time.Location {
	return appLoc
}

// Now: waktu sekarang di zona aplikasi. Service menerima fungsi ini
// lewat injeksi supaya test bisa memakai waktu tetap.
func Now() time.Time {
	return time.Now().In(appLoc)
}

// DateOnly membuang komponen jam: representasi kolom DATE yang seragam
// (tengah malam UTC) supaya perbandingan kesetaraan tanggal konsisten.
func DateOnly(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// ParseDate menerima "YYYY-MM-DD".
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return datatypes.Date{}, err
	}
	return DateOnly(t), nil
}

// FormatDate balik ke "YYYY-MM-DD".
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format("2006-01-02")
}

// DayOfWeekToken: nama hari lowercase ("monday".."sunday") untuk
// dicocokkan dengan schedule_day_of_week.
func DayOfWeekToken(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}
