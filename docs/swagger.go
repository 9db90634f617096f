// Package docs Bridge Site Analyzer API.
//
// Сервис оценки площадок под мостовой переход. По координате (или названию места)
// определяет рельеф, грунт, геологию и сейсмику, ранжирует пять типов мостов
// (висячий, арочный, вантовый, балочный, ферменный) и оценивает стоимость,
// сроки и жизненный цикл.
//
// Основные возможности:
// - Анализ площадки по координатам со справочником эталонных площадок
// - Сейсмическая сводка по каталогу USGS с деградацией при недоступности
// - Поиск места по названию (OpenStreetMap Nominatim)
// - Выбор площадки в сессии (побеждает последний запрос)
// - История анализов в PostgreSQL
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
