package analysis

import (
	"time"

	"github.com/bridge-site-analyzer/internal/domain"
)

// RecentWindow - окно "недавних" событий относительно момента оценки
const RecentWindow = 365 * 24 * time.Hour

// SummarizeEarthquakes сводит список событий в агрегированную статистику.
// now передаётся явно, чтобы результат был воспроизводим.
func SummarizeEarthquakes(events []domain.SeismicEvent, now time.Time) domain.EarthquakeSummary {
	summary := domain.EarthquakeSummary{Total: len(events)}

	var recentMagnitudeSum float64
	nowMillis := now.UnixMilli()
	windowMillis := RecentWindow.Milliseconds()

	for _, e := range events {
		mag := 0.0
		if e.Magnitude != nil {
			mag = *e.Magnitude
		}

		if mag > summary.MaxMagnitude {
			summary.MaxMagnitude = mag
		}

		if nowMillis-e.TimestampMillis <= windowMillis {
			summary.Recent++
			recentMagnitudeSum += mag
		}
	}

	summary.Frequency = frequencyBand(summary.Recent)

	var mean float64
	if summary.Recent > 0 {
		mean = recentMagnitudeSum / float64(summary.Recent)
	}
	summary.RiskLevel = seismicRiskBand(mean)

	return summary
}

func frequencyBand(recent int) domain.Frequency {
	switch {
	case recent < 1:
		return domain.FrequencyNone
	case recent < 5:
		return domain.FrequencyLow
	case recent < 20:
		return domain.FrequencyModerate
	case recent < 50:
		return domain.FrequencyHigh
	default:
		return domain.FrequencyVeryHigh
	}
}

func seismicRiskBand(meanMagnitude float64) domain.RiskLevel {
	switch {
	case meanMagnitude < 4.0:
		return domain.RiskLow
	case meanMagnitude < 5.5:
		return domain.RiskModerate
	case meanMagnitude < 7.0:
		return domain.RiskHigh
	default:
		return domain.RiskVeryHigh
	}
}
