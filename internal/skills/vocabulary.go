package skills

// MasterVocabulary is the fixed phrase list the dictionary extractor matches
// against. Matching is case-insensitive and longest-match-first, so multi-word
// entries win over their single-word substrings.
var MasterVocabulary = []string{
	"Python", "JavaScript", "TypeScript", "Java", "C++", "C#", "Go", "Rust", "Ruby", "PHP", "Kotlin", "Swift",
	"React", "React.js", "ReactJS", "Angular", "Vue", "Vue.js", "VueJS", "Node", "Node.js", "NodeJS",
	"Django", "Flask", "FastAPI", "Spring", "Spring Boot", "Express", "Express.js",
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "SQLite", "SQL Server", "Oracle", "SQL",
	"Docker", "Kubernetes", "AWS", "Azure", "GCP", "Terraform", "Ansible",
	"Git", "GitHub", "CI/CD", "Jenkins", "GitLab", "GitLab CI",
	"REST API", "GraphQL", "gRPC", "Microservices", "REST",
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "scikit-learn", "NLP",
	"Data Science", "Pandas", "NumPy", "Jupyter", "Data Analysis",
	"HTML", "CSS", "Tailwind", "Tailwind CSS", "Bootstrap", "SASS", "LESS",
	"Agile", "Scrum", "Jira", "Confluence", "Kanban",
	"Linux", "Bash", "Shell", "Unix",
	"Testing", "Unit Testing", "Pytest", "Jest", "JUnit", "Selenium", "Cypress",
	"ETL", "Apache Spark", "Kafka", "Airflow",
	"Tableau", "Power BI", "Data Visualization",
	"OOP", "Design Patterns", "System Design", "Distributed Systems",
	"C", "Scala", "Elixir", "Haskell", "Perl", "R", "MATLAB", "Dart", "Flutter",
	"Next.js", "Nuxt", "Svelte", "jQuery", "Redux", "Webpack", "Vite",
	"Rails", "Laravel", "Symfony", "ASP.NET", ".NET", "Gin", "Fiber", "Echo",
	"Cassandra", "Elasticsearch", "DynamoDB", "Neo4j", "RabbitMQ", "Celery",
	"Nginx", "Apache", "Prometheus", "Grafana", "Datadog", "Helm", "ArgoCD",
	"CircleCI", "Travis CI", "Bitbucket", "Vercel", "Netlify", "Heroku",
	"OAuth", "JWT", "OpenID Connect", "SAML", "Penetration Testing", "Cryptography",
	"Computer Vision", "Reinforcement Learning", "Generative AI", "LLM",
	"Hugging Face", "LangChain", "OpenCV", "Keras", "XGBoost",
	"Snowflake", "dbt", "BigQuery", "Redshift", "Databricks", "Hadoop", "Hive",
	"Figma", "Sketch", "Adobe XD", "UI Design", "UX Design", "Wireframing",
	"Product Management", "Project Management", "Stakeholder Management",
	"Technical Writing", "Public Speaking", "Mentoring", "Code Review",
	"WebSockets", "Serverless", "Lambda", "Cloud Functions", "Event-Driven Architecture",
	"Domain-Driven Design", "TDD", "BDD", "Clean Architecture", "SOLID",
	"Accessibility", "SEO", "Performance Optimization", "Caching",
	"iOS", "Android", "React Native", "SwiftUI", "Jetpack Compose",
}
