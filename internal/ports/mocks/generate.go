//go:generate mockgen -source=../kv_store.go          -destination=./mock_kv_store.go          -package=mocks
//go:generate mockgen -source=../pokemon_lookup.go    -destination=./mock_pokemon_lookup.go    -package=mocks
//go:generate mockgen -source=../pokemon_cache.go     -destination=./mock_pokemon_cache.go     -package=mocks
//go:generate mockgen -source=../validator.go         -destination=./mock_validator.go         -package=mocks
//go:generate mockgen -source=../logger.go            -destination=./mock_logger.go            -package=mocks
//go:generate mockgen -source=../message_consumer.go  -destination=./mock_message_consumer.go  -package=mocks
//go:generate mockgen -source=../favorites_service.go -destination=./mock_favorites_service.go -package=mocks
//go:generate mockgen -source=../catalog_service.go   -destination=./mock_catalog_service.go   -package=mocks

package mocks
