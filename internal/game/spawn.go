package game

import "github.com/tomz197/galaxyblaster/internal/object"

// spawn is the spawn director. A due boss takes precedence; otherwise a
// regular hostile appears unless a boss is still in play.
func (r *Run) spawn() {
	if wave, ok := r.Progress.NextBossWave(); ok {
		if r.table.PurgeOnBoss {
			r.purgeRegulars()
		}
		boss := object.NewBoss(float64(r.view.Width), wave, r.Progress.IsFinalWave(wave))
		r.Hostiles = append(r.Hostiles, boss)
		r.Progress.BossSpawnedAt(wave)
		r.emit(EventBossSpawned, boss.X, boss.Y)
		r.log.Info("boss spawned", "wave", wave, "final", boss.Final, "meteors", r.Progress.MeteorsDestroyed)
		return
	}
	if r.Progress.BossActive {
		return
	}
	r.Hostiles = append(r.Hostiles, object.NewMeteor(r.rng, float64(r.view.Width)))
}

// purgeRegulars clears every regular hostile from the field.
func (r *Run) purgeRegulars() {
	for _, h := range r.Hostiles {
		if !h.Boss {
			h.MarkDestroyed()
		}
	}
	r.Hostiles = compact(r.Hostiles)
}
