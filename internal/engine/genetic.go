package engine

import (
	"math/rand"
	"sort"

	"glasscut/internal/model"
)

// GeneticConfig holds parameters for the genetic order search.
type GeneticConfig struct {
	PopulationSize int
	Generations    int
	MutationRate   float64
	TournamentSize int
	EliteCount     int
	Seed           int64
}

// DefaultGeneticConfig returns the stock parameters. The seed is fixed so
// that identical input and settings reproduce the identical result.
func DefaultGeneticConfig() GeneticConfig {
	return GeneticConfig{
		PopulationSize: 50,
		Generations:    100,
		MutationRate:   0.15,
		TournamentSize: 3,
		EliteCount:     2,
		Seed:           42,
	}
}

// gene is a single placement decision: which piece next, and whether to
// try it rotated first.
type gene struct {
	pieceIndex int
	rotated    bool
}

// chromosome is a candidate solution: an ordering of all pieces with
// rotation preferences, and its evaluated fitness.
type chromosome struct {
	genes   []gene
	fitness float64
}

type geneticSearch struct {
	settings model.Settings
	config   GeneticConfig
	pieces   []model.Piece
	rng      *rand.Rand
}

// packGenetic searches over piece orderings and rotation flags, decoding
// each chromosome through the same allocator and free-space tracker the
// greedy pass uses, and returns the fittest packing found.
func (p *Packer) packGenetic(pieces []model.Piece) model.PackResult {
	config := DefaultGeneticConfig()
	// Scale the search with problem size.
	if len(pieces) > 20 {
		config.Generations = 150
	}
	if len(pieces) > 50 {
		config.Generations = 200
		config.PopulationSize = 80
	}

	g := &geneticSearch{
		settings: p.Settings,
		config:   config,
		pieces:   pieces,
		rng:      rand.New(rand.NewSource(config.Seed)),
	}
	return g.optimize()
}

func (g *geneticSearch) optimize() model.PackResult {
	population := g.initPopulation()
	for i := range population {
		population[i].fitness = g.evaluate(population[i])
	}

	for gen := 0; gen < g.config.Generations; gen++ {
		sortByFitness(population)

		newPop := make([]chromosome, 0, g.config.PopulationSize)
		elite := g.config.EliteCount
		if elite > len(population) {
			elite = len(population)
		}
		for i := 0; i < elite; i++ {
			newPop = append(newPop, copyChromosome(population[i]))
		}

		for len(newPop) < g.config.PopulationSize {
			parent1 := g.tournamentSelect(population)
			parent2 := g.tournamentSelect(population)
			child := g.orderCrossover(parent1, parent2)
			g.mutate(&child)
			child.fitness = g.evaluate(child)
			newPop = append(newPop, child)
		}
		population = newPop
	}

	sortByFitness(population)
	return g.decode(population[0])
}

// sortByFitness orders a population best first. The sort is stable so
// equal-fitness individuals keep their generation order and runs stay
// reproducible.
func sortByFitness(population []chromosome) {
	sort.SliceStable(population, func(i, j int) bool {
		return population[i].fitness > population[j].fitness
	})
}

func (g *geneticSearch) initPopulation() []chromosome {
	n := len(g.pieces)
	population := make([]chromosome, g.config.PopulationSize)

	for i := range population {
		genes := make([]gene, n)
		perm := g.rng.Perm(n)
		for j := 0; j < n; j++ {
			genes[j] = gene{
				pieceIndex: perm[j],
				rotated:    g.settings.AllowRotation && g.rng.Float64() < 0.5,
			}
		}
		population[i] = chromosome{genes: genes}
	}

	// Seed one individual with the greedy largest-first order so the
	// search never does worse than the greedy baseline ordering.
	if len(population) > 0 {
		population[0] = g.greedyChromosome()
	}
	return population
}

func (g *geneticSearch) greedyChromosome() chromosome {
	ordered := sortForPacking(g.pieces)
	indexByID := make(map[int]int, len(g.pieces))
	for i, piece := range g.pieces {
		indexByID[piece.ID] = i
	}
	genes := make([]gene, len(ordered))
	for i, piece := range ordered {
		genes[i] = gene{pieceIndex: indexByID[piece.ID]}
	}
	return chromosome{genes: genes}
}

// evaluate decodes a chromosome and scores the packing: material
// efficiency, penalized per unplaced piece and per extra sheet.
func (g *geneticSearch) evaluate(c chromosome) float64 {
	result := g.decode(c)
	if len(result.Sheets) == 0 {
		return 0
	}

	efficiency := result.TotalUtilization() / 100.0
	fitness := efficiency -
		float64(len(result.Unplaced))*0.1 -
		float64(len(result.Sheets)-1)*0.05
	if fitness < 0 {
		fitness = 0
	}
	return fitness
}

// decode replays a chromosome through a fresh run: pieces in gene order,
// each tried in its preferred orientation first.
func (g *geneticSearch) decode(c chromosome) model.PackResult {
	r := newRun(g.settings)
	for _, gn := range c.genes {
		pref := orientNormalFirst
		if gn.rotated {
			pref = orientRotatedFirst
		}
		r.place(g.pieces[gn.pieceIndex], pref)
	}
	return r.result()
}

func (g *geneticSearch) tournamentSelect(population []chromosome) chromosome {
	best := population[g.rng.Intn(len(population))]
	for i := 1; i < g.config.TournamentSize; i++ {
		c := population[g.rng.Intn(len(population))]
		if c.fitness > best.fitness {
			best = c
		}
	}
	return copyChromosome(best)
}

// orderCrossover implements Order Crossover (OX1) for permutation
// chromosomes, preserving relative order from both parents.
func (g *geneticSearch) orderCrossover(parent1, parent2 chromosome) chromosome {
	n := len(parent1.genes)
	if n <= 2 {
		return copyChromosome(parent1)
	}

	point1 := g.rng.Intn(n)
	point2 := g.rng.Intn(n)
	if point1 > point2 {
		point1, point2 = point2, point1
	}

	child := chromosome{genes: make([]gene, n)}
	inSegment := make(map[int]bool, point2-point1+1)
	for i := point1; i <= point2; i++ {
		child.genes[i] = parent1.genes[i]
		inSegment[parent1.genes[i].pieceIndex] = true
	}

	childIdx := (point2 + 1) % n
	for _, pg := range parent2.genes {
		if !inSegment[pg.pieceIndex] {
			child.genes[childIdx] = pg
			childIdx = (childIdx + 1) % n
		}
	}
	return child
}

func (g *geneticSearch) mutate(c *chromosome) {
	n := len(c.genes)
	if n < 2 {
		return
	}

	// Swap two genes.
	if g.rng.Float64() < g.config.MutationRate {
		i, j := g.rng.Intn(n), g.rng.Intn(n)
		c.genes[i], c.genes[j] = c.genes[j], c.genes[i]
	}

	// Toggle a rotation preference.
	if g.rng.Float64() < g.config.MutationRate {
		i := g.rng.Intn(n)
		if g.settings.AllowRotation {
			c.genes[i].rotated = !c.genes[i].rotated
		}
	}

	// Reverse a segment, less often.
	if g.rng.Float64() < g.config.MutationRate*0.5 {
		i, j := g.rng.Intn(n), g.rng.Intn(n)
		if i > j {
			i, j = j, i
		}
		for i < j {
			c.genes[i], c.genes[j] = c.genes[j], c.genes[i]
			i++
			j--
		}
	}
}

func copyChromosome(c chromosome) chromosome {
	genes := make([]gene, len(c.genes))
	copy(genes, c.genes)
	return chromosome{genes: genes, fitness: c.fitness}
}
