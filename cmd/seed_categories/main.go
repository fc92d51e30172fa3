// seed_categories carga un árbol de categorías desde XML en el store configurado.
//
// Uso: go run ./cmd/seed_categories [ruta/categorias.xml]
// Por defecto lee seeds/categorias.xml. Acepta archivos UTF-8 o ISO-8859-1.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/seed"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

func main() {
	xmlPath := "seeds/categorias.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.Store.Driver != config.StoreDriverPostgres {
		fmt.Fprintf(os.Stderr, "seed_categories requiere STORE_DRIVER=postgres (actual: %s)\n", cfg.Store.Driver)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	roots, err := seed.LoadCategoryTree(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if _, err := postgres.Migrate(ctx, pool); err != nil {
			fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
			os.Exit(1)
		}
	}

	importer := usecase.NewCategoryImportUseCase(postgres.NewTxRunner(pool), log)
	n, err := importer.Import(ctx, roots)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Importar categorías: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Importadas %d categorías desde %s\n", n, xmlPath)
}
