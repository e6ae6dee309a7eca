// Package monthwindow はカレンダー月の境界を計算します。
package monthwindow

import "time"

// Bounds は today が属するカレンダー月の初日と末日を返します。
// 末日は翌月0日への正規化で求めるため、閏年も正しく扱えます。
// 純粋関数であり、現在時刻には依存しません。
func Bounds(today time.Time) (first, last time.Time) {
	first = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	last = time.Date(today.Year(), today.Month()+1, 0, 0, 0, 0, 0, today.Location())
	return first, last
}
