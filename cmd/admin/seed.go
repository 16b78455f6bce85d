package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/content"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/product"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/storage"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/spot"
	"github.com/gin-gonic/gin/binding"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// fixtureFile entries use the same field names as the JSON API
type fixtureFile struct {
	Spots    []map[string]any `yaml:"spots"`
	Products []map[string]any `yaml:"products"`
	Contents []map[string]any `yaml:"contents"`
}

type seedResult struct {
	Spots    int
	Products int
	Contents int
}

func newSeedCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load spots, products and contents from a YAML file",
		Long: `Load fixtures for a fresh environment.
Spots and products are inserted only into empty tables. Contents are upserted by key.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("fixture 파일 열기 실패: %w", err)
			}
			defer f.Close()

			db, err := a.database()
			if err != nil {
				return err
			}
			// 생성만 하므로 스토리지 연결은 필요 없다
			result, err := seed(cmd.Context(), db, nil, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded spots=%d products=%d contents=%d\n",
				result.Spots, result.Products, result.Contents)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "fixtures.yaml", "fixture file")
	return cmd
}

func seed(ctx context.Context, db *gorm.DB, files storage.Storage, r io.Reader) (seedResult, error) {
	var result seedResult
	log := logger.FromContext(ctx)

	var fixtures fixtureFile
	if err := yaml.NewDecoder(r).Decode(&fixtures); err != nil && err != io.EOF {
		return result, fmt.Errorf("fixture 파싱 실패: %w", err)
	}

	recorder := newRecorder(db)

	if len(fixtures.Spots) > 0 {
		empty, err := isEmpty(ctx, db, &model.Spot{})
		if err != nil {
			return result, err
		}
		if !empty {
			log.Info("관광지 데이터가 이미 있어 건너뜁니다")
		} else {
			service := spot.NewSpotService(db, spot.NewSpotRepository(), files, recorder)
			for i, raw := range fixtures.Spots {
				request, err := decodeFixture[spot.SpotRequest](raw)
				if err != nil {
					return result, fmt.Errorf("spots[%d]: %w", i, err)
				}
				if _, err := service.Create(ctx, request); err != nil {
					return result, fmt.Errorf("spots[%d]: %w", i, err)
				}
				result.Spots++
			}
		}
	}

	if len(fixtures.Products) > 0 {
		empty, err := isEmpty(ctx, db, &model.Product{})
		if err != nil {
			return result, err
		}
		if !empty {
			log.Info("상품 데이터가 이미 있어 건너뜁니다")
		} else {
			service := product.NewProductService(db, product.NewProductRepository(), files, recorder)
			for i, raw := range fixtures.Products {
				request, err := decodeFixture[product.ProductRequest](raw)
				if err != nil {
					return result, fmt.Errorf("products[%d]: %w", i, err)
				}
				if _, err := service.Create(ctx, request); err != nil {
					return result, fmt.Errorf("products[%d]: %w", i, err)
				}
				result.Products++
			}
		}
	}

	service := content.NewContentService(db, content.NewContentRepository(), recorder)
	for i, raw := range fixtures.Contents {
		key, _ := raw["key"].(string)
		request, err := decodeFixture[content.ContentRequest](raw)
		if err != nil {
			return result, fmt.Errorf("contents[%d]: %w", i, err)
		}
		if _, err := service.Upsert(ctx, key, request); err != nil {
			return result, fmt.Errorf("contents[%d] key=%s: %w", i, key, err)
		}
		result.Contents++
	}

	log.Info("fixture 적재 완료", "spots", result.Spots, "products", result.Products, "contents", result.Contents)
	return result, nil
}

// decodeFixture maps a YAML entry onto an API request through its JSON tags and validates it
func decodeFixture[T any](raw map[string]any) (*T, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	request := new(T)
	if err := json.Unmarshal(data, request); err != nil {
		return nil, err
	}
	if err := binding.Validator.ValidateStruct(request); err != nil {
		return nil, fmt.Errorf("입력값 오류: %w", err)
	}
	return request, nil
}

func isEmpty(ctx context.Context, db *gorm.DB, m any) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(m).Count(&count).Error; err != nil {
		return false, fmt.Errorf("데이터 조회 실패: %w", err)
	}
	return count == 0, nil
}
