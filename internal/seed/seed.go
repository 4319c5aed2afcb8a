// Package seed puebla los datos iniciales del sitio cuando las
// colecciones están vacías. Idempotente por tipo de registro: si ya hay
// al menos un registro de ese tipo, el seed de ese tipo se salta entero.
package seed

import (
	"context"

	"pawkind/internal/domain/caretips"
	"pawkind/internal/domain/pets"
	"pawkind/internal/domain/stories"
	"pawkind/internal/platform/logger"
)

var defaultPets = []pets.CreateInput{
	{Name: "Bella", Type: "dog", Age: "2 years", Bio: "Friendly and energetic, loves playing fetch.", Emoji: "🐕"},
	{Name: "Whiskers", Type: "cat", Age: "1 year", Bio: "Gentle and affectionate, perfect lap cat.", Emoji: "🐈"},
	{Name: "Max", Type: "dog", Age: "3 years", Bio: "Loyal companion, great with kids.", Emoji: "🐕"},
	{Name: "Luna", Type: "cat", Age: "6 months", Bio: "Playful kitten, full of curiosity.", Emoji: "🐈"},
	{Name: "Rocky", Type: "dog", Age: "4 years", Bio: "Calm and patient, loves long walks.", Emoji: "🐕"},
	{Name: "Mittens", Type: "cat", Age: "2 years", Bio: "Independent but sweet, enjoys quiet spaces.", Emoji: "🐈"},
}

var defaultTips = []caretips.CreateInput{
	{Title: "Nutrition", Content: "Provide a balanced diet with high-quality pet food. Always ensure fresh water is available.", Icon: "fas fa-bowl-food", Category: "nutrition"},
	{Title: "Veterinary Care", Content: "Regular check-ups and vaccinations are essential for your pet's health.", Icon: "fas fa-stethoscope", Category: "health"},
	{Title: "Safe Environment", Content: "Create a safe, comfortable space for your pet with toys and a cozy bed.", Icon: "fas fa-home", Category: "general"},
	{Title: "Exercise & Play", Content: "Daily exercise and playtime keep pets physically and mentally stimulated.", Icon: "fas fa-heart", Category: "health"},
	{Title: "Grooming", Content: "Regular grooming helps maintain your pet's coat and overall hygiene.", Icon: "fas fa-shield-heart", Category: "grooming"},
}

var defaultStories = []stories.CreateInput{
	{Name: "Charlie & Daisy", Story: "Charlie was a shy rescue who blossomed into a confident, loving companion after joining our family.", Emoji: "🐕"},
	{Name: "Oliver & Lily", Story: "Oliver found his forever home with us and brings joy to our lives every single day.", Emoji: "🐈"},
	{Name: "The Johnson Family", Story: "Adopting two siblings was the best decision we ever made. They're inseparable!", Emoji: "🐕🐕"},
	{Name: "Mia's Journey", Story: "From a scared stray to the queen of our household, Mia's transformation has been incredible.", Emoji: "🐈"},
}

type Runner struct {
	pets    *pets.Service
	tips    *caretips.Service
	stories *stories.Service
	log     logger.Logger
}

func NewRunner(petsSvc *pets.Service, tipsSvc *caretips.Service, storiesSvc *stories.Service, log logger.Logger) *Runner {
	return &Runner{
		pets:    petsSvc,
		tips:    tipsSvc,
		stories: storiesSvc,
		log:     log,
	}
}

func (r *Runner) Run(ctx context.Context) error {
	if err := r.seedPets(ctx); err != nil {
		return err
	}
	if err := r.seedTips(ctx); err != nil {
		return err
	}
	return r.seedStories(ctx)
}

func (r *Runner) seedPets(ctx context.Context) error {
	n, err := r.pets.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, in := range defaultPets {
		if _, err := r.pets.Create(ctx, in); err != nil {
			return err
		}
	}
	r.log.Info("seeded pets", map[string]any{"count": len(defaultPets)})
	return nil
}

func (r *Runner) seedTips(ctx context.Context) error {
	n, err := r.tips.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, in := range defaultTips {
		if _, err := r.tips.Create(ctx, in); err != nil {
			return err
		}
	}
	r.log.Info("seeded care tips", map[string]any{"count": len(defaultTips)})
	return nil
}

func (r *Runner) seedStories(ctx context.Context) error {
	n, err := r.stories.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, in := range defaultStories {
		if _, err := r.stories.Create(ctx, in); err != nil {
			return err
		}
	}
	r.log.Info("seeded success stories", map[string]any{"count": len(defaultStories)})
	return nil
}
