package model

// DefaultWeeklyMenu is the built-in routine used before the user customizes
// anything: light stretching and bodyweight work on weekdays, weekend rest.
func DefaultWeeklyMenu() WeeklyMenu {
	m := NewWeeklyMenu()
	m[Monday] = []Exercise{
		{Name: "ハムストリングストレッチ", Emoji: "🦵", Reps: 30, Sets: 3, Unit: UnitSeconds, Image: "images/hamstring-stretch.png"},
		{Name: "体側伸ばし", Emoji: "🤸", Reps: 45, Sets: 2, Unit: UnitSeconds, Image: "images/seated-trunk-side-bend.png"},
	}
	m[Tuesday] = []Exercise{
		{Name: "腕立て伏せ", Emoji: "💪", Reps: 10, Sets: 3, Unit: UnitReps, Image: "images/push-up.png"},
	}
	m[Wednesday] = []Exercise{
		{Name: "プランク", Emoji: "🏋️", Reps: 30, Sets: 3, Unit: UnitSeconds, Image: "images/plank.png"},
	}
	m[Thursday] = []Exercise{
		{Name: "スクワット", Emoji: "🦵", Reps: 15, Sets: 3, Unit: UnitReps, Image: "images/squat.png"},
	}
	m[Friday] = []Exercise{
		{Name: "ランジ", Emoji: "🦵", Reps: 15, Sets: 3, Unit: UnitReps, Image: "images/lunge.png"},
	}
	return m
}

// Templates lists the stock exercises offered by the menu editor's picker.
func Templates() []Exercise {
	return []Exercise{
		{Name: "アキレス腱ストレッチ", Emoji: "🦵", Reps: 30, Sets: 3, Unit: UnitSeconds, Category: "ストレッチ", Image: "images/achilles-tendon-stretch.png"},
		{Name: "バードドッグ", Emoji: "🐦", Reps: 20, Sets: 3, Unit: UnitReps, Category: "体幹", Image: "images/bird-dog.png"},
		{Name: "カーフレイズ", Emoji: "🦵", Reps: 20, Sets: 3, Unit: UnitReps, Category: "下半身", Image: "images/calf-raise.png"},
		{Name: "キャットカウ", Emoji: "🐱", Reps: 15, Sets: 2, Unit: UnitReps, Category: "ストレッチ", Image: "images/cat-cow.png"},
		{Name: "サイクリング", Emoji: "🚴", Reps: 10, Sets: 1, Unit: UnitMinutes, Category: "有酸素", Image: "images/cycling.png"},
		{Name: "エルゴメーター", Emoji: "🚣", Reps: 10, Sets: 1, Unit: UnitMinutes, Category: "有酸素", Image: "images/ergometer.png"},
		{Name: "お尻ストレッチ", Emoji: "🍑", Reps: 30, Sets: 3, Unit: UnitSeconds, Category: "ストレッチ", Image: "images/glute-stretch.png"},
		{Name: "ハムストリングストレッチ", Emoji: "🦵", Reps: 30, Sets: 3, Unit: UnitSeconds, Category: "ストレッチ", Image: "images/hamstring-stretch.png"},
		{Name: "膝抱えストレッチ", Emoji: "🤗", Reps: 30, Sets: 3, Unit: UnitSeconds, Category: "ストレッチ", Image: "images/knee-hug-stretch.png"},
		{Name: "ランジ", Emoji: "🦵", Reps: 15, Sets: 3, Unit: UnitReps, Category: "下半身", Image: "images/lunge.png"},
		{Name: "胸ストレッチ", Emoji: "💪", Reps: 30, Sets: 3, Unit: UnitSeconds, Category: "ストレッチ", Image: "images/pec-stretch.png"},
		{Name: "プランク", Emoji: "🏋️", Reps: 30, Sets: 3, Unit: UnitSeconds, Category: "体幹", Image: "images/plank.png"},
		{Name: "腕立て伏せ", Emoji: "💪", Reps: 10, Sets: 3, Unit: UnitReps, Category: "筋トレ", Image: "images/push-up.png"},
		{Name: "ランニング", Emoji: "🏃", Reps: 15, Sets: 1, Unit: UnitMinutes, Category: "有酸素", Image: "images/running.png"},
		{Name: "座位お尻ストレッチ", Emoji: "🪑", Reps: 30, Sets: 3, Unit: UnitSeconds, Category: "ストレッチ", Image: "images/seated-glute-stretch.png"},
		{Name: "シーテッドロウ", Emoji: "🚣", Reps: 15, Sets: 3, Unit: UnitReps, Category: "背中", Image: "images/seated-row.png"},
		{Name: "体側伸ばし", Emoji: "🤸", Reps: 30, Sets: 3, Unit: UnitSeconds, Category: "ストレッチ", Image: "images/seated-trunk-side-bend.png"},
		{Name: "縄跳び", Emoji: "🪢", Reps: 100, Sets: 3, Unit: UnitReps, Category: "有酸素", Image: "images/skipping-rope.png"},
		{Name: "スクワット", Emoji: "🦵", Reps: 15, Sets: 3, Unit: UnitReps, Category: "下半身", Image: "images/squat.png"},
		{Name: "脊柱ツイスト", Emoji: "🌀", Reps: 15, Sets: 3, Unit: UnitReps, Category: "ストレッチ", Image: "images/supine-spinal-twist.png"},
		{Name: "トランクカール", Emoji: "💪", Reps: 20, Sets: 3, Unit: UnitReps, Category: "体幹", Image: "images/trunk-curl.png"},
		{Name: "ウォーキング", Emoji: "🚶", Reps: 20, Sets: 1, Unit: UnitMinutes, Category: "有酸素", Image: "images/walking.png"},
	}
}
