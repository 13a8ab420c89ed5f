package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// defaultDueHour is the local hour assigned when a day expression carries
// no clock time ("tomorrow" alone means tomorrow at 17:00).
const defaultDueHour = 17

var (
	reToday       = regexp.MustCompile(`(?i)\btoday\b`)
	reTomorrow    = regexp.MustCompile(`(?i)\btomorrow\b`)
	reNextWeekday = regexp.MustCompile(`(?i)\bnext\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	reISODate     = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	reMonthDay    = regexp.MustCompile(`(?i)\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\s+(\d{1,2})(?:st|nd|rd|th)?\b`)

	// Clock expressions require either a colon or an am/pm suffix so a
	// bare number is never misread as a time.
	reClockColon = regexp.MustCompile(`(?i)\b(?:by|at)\s+(\d{1,2}):(\d{2})\s*(am|pm)?\b`)
	reClockAMPM  = regexp.MustCompile(`(?i)\b(?:by|at)\s+(\d{1,2})\s*(am|pm)\b`)
)

var weekdays = map[string]time.Weekday{
	"monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
	"thursday": time.Thursday, "friday": time.Friday, "saturday": time.Saturday,
	"sunday": time.Sunday,
}

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// extractDueDate resolves a relative or explicit date expression, plus an
// optional clock time, against now. It returns the residual text and the
// resolved due date (nil when nothing matched).
func extractDueDate(text string, now time.Time) (string, *time.Time) {
	text, day, hasDay := extractDay(text, now)
	text, hour, minute, hasClock := extractClock(text)

	if !hasDay && !hasClock {
		return text, nil
	}
	if !hasDay {
		// Clock alone means today at that time.
		day = now
	}
	if !hasClock {
		hour, minute = defaultDueHour, 0
	}

	due := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, now.Location())
	return text, &due
}

func extractDay(text string, now time.Time) (string, time.Time, bool) {
	if loc := reToday.FindStringIndex(text); loc != nil {
		return cut(text, loc), now, true
	}
	if loc := reTomorrow.FindStringIndex(text); loc != nil {
		return cut(text, loc), now.AddDate(0, 0, 1), true
	}
	if m := reNextWeekday.FindStringSubmatchIndex(text); m != nil {
		name := strings.ToLower(text[m[2]:m[3]])
		return cut(text, m[:2]), nextWeekday(now, weekdays[name]), true
	}
	if m := reISODate.FindStringSubmatchIndex(text); m != nil {
		year, _ := strconv.Atoi(text[m[2]:m[3]])
		month, _ := strconv.Atoi(text[m[4]:m[5]])
		dayNum, _ := strconv.Atoi(text[m[6]:m[7]])
		if month >= 1 && month <= 12 && dayNum >= 1 && dayNum <= 31 {
			day := time.Date(year, time.Month(month), dayNum, 0, 0, 0, 0, now.Location())
			return cut(text, m[:2]), day, true
		}
	}
	if m := reMonthDay.FindStringSubmatchIndex(text); m != nil {
		name := strings.ToLower(text[m[2]:m[3]])[:3]
		dayNum, _ := strconv.Atoi(text[m[4]:m[5]])
		if dayNum >= 1 && dayNum <= 31 {
			day := time.Date(now.Year(), months[name], dayNum, 0, 0, 0, 0, now.Location())
			// A month/day already behind us rolls into next year.
			if day.Before(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())) {
				day = day.AddDate(1, 0, 0)
			}
			return cut(text, m[:2]), day, true
		}
	}
	return text, time.Time{}, false
}

func extractClock(text string) (residual string, hour, minute int, ok bool) {
	if m := reClockColon.FindStringSubmatchIndex(text); m != nil {
		hour, _ = strconv.Atoi(text[m[2]:m[3]])
		minute, _ = strconv.Atoi(text[m[4]:m[5]])
		if m[6] >= 0 {
			hour = toTwentyFour(hour, text[m[6]:m[7]])
		}
		if hour < 24 && minute < 60 {
			return cut(text, m[:2]), hour, minute, true
		}
	}
	if m := reClockAMPM.FindStringSubmatchIndex(text); m != nil {
		hour, _ = strconv.Atoi(text[m[2]:m[3]])
		hour = toTwentyFour(hour, text[m[4]:m[5]])
		if hour < 24 {
			return cut(text, m[:2]), hour, 0, true
		}
	}
	return text, 0, 0, false
}

func toTwentyFour(hour int, meridiem string) int {
	switch strings.ToLower(meridiem) {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	return hour
}

// nextWeekday returns the next occurrence of wd strictly after now's day.
func nextWeekday(now time.Time, wd time.Weekday) time.Time {
	days := (int(wd) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return now.AddDate(0, 0, days)
}

// cut removes the span [loc[0], loc[1]) from text, leaving a space so
// surrounding words do not fuse.
func cut(text string, loc []int) string {
	return text[:loc[0]] + " " + text[loc[1]:]
}
