// plan administra el plan de los comerciantes directamente contra la base de
// datos.
//
// Uso:
//
//	plan -list                 lista todos los comerciantes
//	plan -id 42 -plan pro      cambia el plan de un comerciante
//
// Planes válidos: gratis, pro, jadebro, jadebro-max.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jadebro/livecommerce-api/internal/domain/entity"
	"github.com/jadebro/livecommerce-api/internal/infrastructure/postgres"
	"github.com/jadebro/livecommerce-api/pkg/config"
)

func main() {
	id := flag.Int64("id", 0, "id del comerciante")
	plan := flag.String("plan", "", "plan nuevo (gratis, pro, jadebro, jadebro-max)")
	list := flag.Bool("list", false, "listar todos los comerciantes")
	flag.Parse()

	if !*list && (*id <= 0 || *plan == "") {
		fmt.Fprintln(os.Stderr, "uso: plan -list | plan -id <comerciante> -plan <gratis|pro|jadebro|jadebro-max>")
		os.Exit(2)
	}
	if !*list && !entity.PlanValido(*plan) {
		fmt.Fprintf(os.Stderr, "plan desconocido: %q\n", *plan)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewComercianteRepository(pool)

	if *list {
		comerciantes, err := repo.ListAll(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "listar comerciantes: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%-6s %-24s %-32s %-12s %s\n", "ID", "SLUG", "EMAIL", "PLAN", "ACTIVO")
		for _, c := range comerciantes {
			fmt.Printf("%-6d %-24s %-32s %-12s %t\n", c.ID, c.Slug, c.Email, c.Plan, c.Activo)
		}
		return
	}

	c, err := repo.UpdatePlan(ctx, *id, *plan)
	if err != nil {
		fmt.Fprintf(os.Stderr, "actualizar plan: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("comerciante %d (%s): plan → %s\n", c.ID, c.Slug, c.Plan)
}
