// Package precompute runs the four static analyses (player reachability,
// per-crate reachability and push distance, dead squares, articulation
// cuts), filling the cached fields of a level.Level once, before any search
// state exists. The analyses only read the frozen grid, goals, and initial
// positions, so they run concurrently via golang.org/x/sync/errgroup
// (grounded on golang.org/x/sync appearing as a dependency of
// other_examples/manifests/frankkopp-FrankyGo, herohde-morlock, and
// itohio-EasyRobot). This concurrency is confined to this one-shot setup
// phase; the A* driver's state-expansion loop stays single-threaded.
package precompute

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"sokosolve/internal/level"
)

// Analyze fills lvl's cached fields in place. It must be called exactly
// once per Level, after levelio has built it and level.Validate has passed.
// workers caps how many of the analyses below run at once; values <= 0
// leave the errgroup unlimited.
func Analyze(ctx context.Context, lvl *level.Level, workers int) error {
	g, _ := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	g.Go(func() error {
		lvl.PlayerReachable = playerReachable(lvl, lvl.InitialPlayer)
		return nil
	})

	crateReach := make([]map[int]bool, len(lvl.InitialCrates))
	pushDist := make([]map[int]int, len(lvl.InitialCrates))
	goalPushDist := make([][]map[int]int, len(lvl.InitialCrates))
	for i, c := range lvl.InitialCrates {
		i, c := i, c
		g.Go(func() error {
			reach := crateReachable(lvl, c)
			crateReach[i] = reach
			pushDist[i] = pushDistance(lvl, reach, lvl.Goals)
			goalPushDist[i] = pushDistancePerGoal(lvl, reach, lvl.Goals)
			return nil
		})
	}

	var deadSq map[int]bool
	var cutMap map[int]level.CutDirs
	g.Go(func() error {
		// Dead squares and cuts both need the player-reachable set, so they
		// compute their own copy via a dedicated BFS rather than racing on
		// lvl.PlayerReachable while the goroutine above is still writing it.
		reach := playerReachable(lvl, lvl.InitialPlayer)
		deadSq = deadSquares(lvl, reach)
		cutMap = articulationCuts(lvl, reach, lvl.Goals)
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("precompute %q: %w", lvl.Name, err)
	}

	lvl.CrateReachable = crateReach
	lvl.PushDistance = pushDist
	lvl.GoalPushDistance = goalPushDist
	lvl.DeadSquares = deadSq
	lvl.Cuts = cutMap
	return nil
}
