package systems

import "github.com/yohamta/donburi/ecs"

// AddGameSystems registers the per-tick chain for one game session in its
// fixed order. drive produces the tank's input (UpdateInput for a player,
// UpdateAutopilot for the bot) and sound consumes the SFX queue.
func AddGameSystems(e *ecs.ECS, drive, sound ecs.System) {
	e.AddSystem(drive)
	e.AddSystem(UpdatePause)

	e.AddSystem(WithGameplayChecks(UpdateClock))
	e.AddSystem(WithGameplayChecks(UpdateSpawner))

	// Field systems stop during the boss intro and once the game is decided
	e.AddSystem(WithCombatChecks(UpdateTank))
	e.AddSystem(WithCombatChecks(UpdateZombies))
	e.AddSystem(WithCombatChecks(UpdateProjectiles))
	e.AddSystem(WithCombatChecks(UpdatePickups))
	e.AddSystem(WithCombatChecks(UpdateBoss))
	e.AddSystem(WithCombatChecks(UpdateNapalm))
	e.AddSystem(WithCombatChecks(UpdateCombat))

	e.AddSystem(WithGameplayChecks(UpdateRound))
	e.AddSystem(WithGameplayChecks(UpdateEffects))
	e.AddSystem(sound)
}
